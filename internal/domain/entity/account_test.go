package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccount_SetCredential(t *testing.T) {
	account := &Account{ID: uuid.New(), Email: "user@example.com"}
	assert.False(t, account.HasCredential())

	account.SetCredential([]byte("digest"), []byte("salt"))

	assert.True(t, account.HasCredential())
	assert.Equal(t, []byte("digest"), account.CredentialDigest)
	assert.Equal(t, []byte("salt"), account.CredentialSalt)
}

func TestAccount_Sanitized(t *testing.T) {
	account := &Account{ID: uuid.New(), Email: "user@example.com"}
	account.SetCredential([]byte("digest"), []byte("salt"))

	clean := account.Sanitized()

	assert.Nil(t, clean.CredentialDigest)
	assert.Nil(t, clean.CredentialSalt)
	assert.Equal(t, account.ID, clean.ID)
	assert.Equal(t, account.Email, clean.Email)
	// The original record keeps its credential material.
	assert.True(t, account.HasCredential())
}

func TestAccount_SanitizedNil(t *testing.T) {
	var account *Account
	assert.Nil(t, account.Sanitized())
}
