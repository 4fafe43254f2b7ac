package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("otro")))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	v := nullable("L1")
	if assert.NotNil(t, v) {
		assert.Equal(t, "L1", *v)
	}
	assert.Equal(t, "", deref(nil))
	assert.Equal(t, "L1", deref(v))
}

func TestPgx5URL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@localhost:5432/inventory?sslmode=disable", "pgx5://u:p@localhost:5432/inventory?sslmode=disable"},
		{"postgresql://localhost/inventory", "pgx5://localhost/inventory"},
		{"pgx5://localhost/inventory", "pgx5://localhost/inventory"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pgx5URL(tt.in))
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
