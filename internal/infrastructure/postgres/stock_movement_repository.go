package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo libro de movimientos (solo inserción y lectura).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta el movimiento y asigna el ID generado.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	sql, args, err := psql.Insert("stock_movements").
		Columns("product_id", "transaction_id", "movement_type", "movement_category",
			"quantity", "unit", "details", "created_by", "created_at").
		Values(m.ProductID, m.TransactionID, string(m.Type), m.Category,
			m.Quantity, string(m.Unit), m.Details, m.CreatedBy, m.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&m.ID); err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByTypes movimientos de los tipos dados unidos con su producto, más recientes primero.
func (r *StockMovementRepo) ListByTypes(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementView, error) {
	sql, args, err := movementListQuery(f)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var rows []*entity.MovementView
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	return rows, nil
}

func movementListQuery(f repository.MovementFilter) (string, []any, error) {
	types := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		types = append(types, string(t))
	}
	q := psql.Select(
		"m.id", "m.product_id", "p.name AS product_name", "p.unit AS product_unit", "p.lot",
		"m.movement_type", "m.movement_category", "m.quantity", "m.unit", "m.details",
		"m.created_by", "m.created_at",
	).
		From("stock_movements m").
		Join("products p ON p.id = m.product_id").
		Where(squirrel.Eq{"m.movement_type": types}).
		OrderBy("m.created_at DESC", "m.id DESC")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit)).Offset(uint64(f.Offset))
	}
	return q.ToSql()
}
