package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo bitácora de auditoría (solo inserción).
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta el registro y asigna el ID generado.
func (r *AuditLogRepo) Create(ctx context.Context, a *entity.AuditLog) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO audit_logs (user_id, record_changed_id, action_type, entity, changed_value, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		a.UserID, a.RecordChangedID, a.ActionType, a.Entity, a.ChangedValue, a.Details, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
