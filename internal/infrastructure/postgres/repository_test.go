package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
)

func TestMovementListQuery_Ajustes(t *testing.T) {
	sql, args, err := movementListQuery(repository.MovementFilter{
		Types: entity.MovementKindAdjustment.Types(),
		Limit: 50,
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "JOIN products p ON p.id = m.product_id")
	assert.Contains(t, sql, "m.movement_type IN ($1,$2)")
	assert.Contains(t, sql, "ORDER BY m.created_at DESC, m.id DESC")
	assert.Contains(t, sql, "LIMIT 50 OFFSET 0")
	assert.Equal(t, []any{"ADJUSTMENT_POSITIVE", "ADJUSTMENT_NEGATIVE"}, args)
}

func TestMovementListQuery_SinLimite(t *testing.T) {
	sql, args, err := movementListQuery(repository.MovementFilter{Types: entity.MovementKindOutput.Types()})
	require.NoError(t, err)

	assert.NotContains(t, sql, "LIMIT")
	assert.Contains(t, sql, "m.movement_type IN ($1)")
	assert.Equal(t, []any{"OUTPUT"}, args)
}

func TestClasificacionDeErrores(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, isRetryable(wrap("40001")))
	assert.True(t, isRetryable(wrap("40P01")))
	assert.False(t, isRetryable(wrap("23505")))
	assert.False(t, isRetryable(errors.New("conexión rechazada")))

	assert.True(t, isUniqueViolation(wrap("23505")))
	assert.True(t, isCheckViolation(wrap("23514")))
	assert.False(t, isCheckViolation(wrap("23505")))
}
