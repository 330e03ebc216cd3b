package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-alimentos/internal/domain"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productColumns alias al nombre snake_case de cada campo de entity.Product (mapeo de scany).
var productColumns = []string{
	"id", "master_product_id", "name", "quantity", "unit", "lot", "expiry_date", "receipt_date",
	"receiver", "supplier", "type", `product_group AS "group"`, "subgroup", "category", "created_at", "updated_at",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (master_product_id, name, quantity, unit, lot, expiry_date, receipt_date,
			receiver, supplier, type, product_group, subgroup, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.MasterProductID, p.Name, p.Quantity, string(p.Unit), p.Lot, p.ExpiryDate, p.ReceiptDate,
		p.Receiver, p.Supplier, p.Type, p.Group, p.Subgroup, p.Category, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("insert product: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, psql.Select(productColumns...).From("products").Where(squirrel.Eq{"id": id}))
}

// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, psql.Select(productColumns...).From("products").Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *ProductRepo) get(ctx context.Context, q squirrel.SelectBuilder) (*entity.Product, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var p entity.Product
	if err := pgxscan.Get(ctx, r.q, &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// UpdateQuantity fija la existencia del producto (usado solo por el registrador de movimientos).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update product quantity: %w", domain.ErrInsufficientStock)
		}
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update product quantity %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List lista productos con filtros opcionales, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	q := psql.Select(productColumns...).From("products").OrderBy("created_at DESC", "id DESC")
	if f.MasterProductID > 0 {
		q = q.Where(squirrel.Eq{"master_product_id": f.MasterProductID})
	}
	if f.OnlyInStock {
		q = q.Where(squirrel.Gt{"quantity": 0})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit)).Offset(uint64(f.Offset))
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var list []*entity.Product
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}
