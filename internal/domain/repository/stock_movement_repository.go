package repository

import (
	"context"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
)

// MovementFilter filtros del listado de movimientos. Limit 0 = sin límite.
type MovementFilter struct {
	Types  []entity.MovementType
	Limit  int
	Offset int
}

// StockMovementRepository define el puerto del libro de movimientos (solo inserción y lectura).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByTypes devuelve los movimientos unidos con su producto, del más reciente al más antiguo.
	ListByTypes(ctx context.Context, filter MovementFilter) ([]*entity.MovementView, error)
}
