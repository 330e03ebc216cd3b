package repository

import (
	"context"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
)

// AuditLogRepository define el puerto de la bitácora de auditoría (solo inserción).
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLog) error
}
