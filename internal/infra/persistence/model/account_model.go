// Package model contains the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. The unique index on email is
// the authoritative uniqueness guard; the usecase pre-check only provides a
// faster, clearer error.
type AccountModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CredentialDigest []byte    `gorm:"type:bytea;not null"`
	CredentialSalt   []byte    `gorm:"type:bytea;not null"`
	IsDelegate       bool      `gorm:"not null;default:false"`
	IsOwner          bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
