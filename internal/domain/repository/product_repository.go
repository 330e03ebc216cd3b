package repository

import (
	"context"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	MasterProductID int64
	OnlyInStock     bool
	Limit           int
	Offset          int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
