package repository

import (
	"context"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
)

// MasterProductRepository define el puerto de persistencia para el catálogo de productos maestros.
type MasterProductRepository interface {
	Create(ctx context.Context, mp *entity.MasterProduct) error
	GetByID(ctx context.Context, id int64) (*entity.MasterProduct, error)
	List(ctx context.Context, limit, offset int) ([]*entity.MasterProduct, error)
}
