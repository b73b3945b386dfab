package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// A concurrent create that loses on the unique email index must be
// recognized whether GORM has translated the driver error or not.
func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "translated duplicate key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped translated duplicate key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert failed"), want: true},
		{name: "raw unique violation", err: &pgconn.PgError{Code: pgUniqueViolationCode}, want: true},
		{name: "wrapped raw unique violation", err: errors.Wrap(&pgconn.PgError{Code: pgUniqueViolationCode}, "insert failed"), want: true},
		{name: "other pg error", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "record not found", err: gorm.ErrRecordNotFound, want: false},
		{name: "plain error", err: errors.New("connection reset"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}
