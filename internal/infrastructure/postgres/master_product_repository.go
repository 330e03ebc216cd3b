package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/banco-alimentos/internal/domain"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
)

var _ repository.MasterProductRepository = (*MasterProductRepo)(nil)

var masterProductColumns = []string{
	"id", "name", "base_unit", `product_group AS "group"`, "subgroup", "category", "created_at", "updated_at",
}

// MasterProductRepo catálogo de productos maestros sobre PostgreSQL.
type MasterProductRepo struct {
	q Querier
}

// NewMasterProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMasterProductRepository(q Querier) *MasterProductRepo {
	return &MasterProductRepo{q: q}
}

// Create inserta un producto maestro. El nombre es único (sin distinguir mayúsculas).
func (r *MasterProductRepo) Create(ctx context.Context, mp *entity.MasterProduct) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO master_products (name, base_unit, product_group, subgroup, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		mp.Name, string(mp.BaseUnit), mp.Group, mp.Subgroup, mp.Category, mp.CreatedAt, mp.UpdatedAt,
	).Scan(&mp.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert master product: %w", err)
	}
	return nil
}

// GetByID (nil, nil) si no existe.
func (r *MasterProductRepo) GetByID(ctx context.Context, id int64) (*entity.MasterProduct, error) {
	sql, args, err := psql.Select(masterProductColumns...).From("master_products").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var mp entity.MasterProduct
	if err := pgxscan.Get(ctx, r.q, &mp, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get master product: %w", err)
	}
	return &mp, nil
}

// List ordenado por nombre. limit 0 = sin límite.
func (r *MasterProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.MasterProduct, error) {
	q := psql.Select(masterProductColumns...).From("master_products").OrderBy("name ASC", "id ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit)).Offset(uint64(offset))
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var list []*entity.MasterProduct
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list master products: %w", err)
	}
	return list, nil
}
