package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

func TestMapWriteError(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.ErrorIs(t, mapWriteError(unique), domain.ErrDuplicate)
	assert.ErrorIs(t, mapWriteError(fk), domain.ErrConflict)
	assert.Nil(t, mapWriteError(errors.New("conexión rechazada")))
	assert.True(t, isCheckViolation(&pgconn.PgError{Code: "23514"}))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%tal%", likePattern("tal"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db?sslmode=disable", migrateURL("postgres://u:p@h:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://u:p@h/db", migrateURL("postgresql://u:p@h/db"))
}
