package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
	}{
		{name: "nil", err: nil},
		{name: "gorm duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), unique: true},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: groups.name"), unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, foreignKey: true},
		{name: "postgres not null", err: &pgconn.PgError{Code: "23502"}, notNull: true},
		{name: "sqlite not null", err: errors.New("NOT NULL constraint failed: groups.name"), notNull: true},
		{name: "unrelated", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
