package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad de la triple escritura: producto, movimiento y auditoría.
// Si fn devuelve error se hace Rollback y no queda ninguna escritura visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}

// StockEvent cambio de stock ya confirmado (después del Commit).
type StockEvent struct {
	ProductID         int64               `json:"product_id"`
	ProductName       string              `json:"product_name"`
	MovementType      entity.MovementType `json:"movement_type"`
	Category          string              `json:"movement_category"`
	Quantity          decimal.Decimal     `json:"quantity"`
	Unit              entity.Unit         `json:"unit"`
	ResultingQuantity decimal.Decimal     `json:"resulting_quantity"`
	ProductUnit       entity.Unit         `json:"product_unit"`
	UserID            string              `json:"user_id"`
	UserName          string              `json:"user_name"`
	At                time.Time           `json:"at"`
}

// StockNotifier recibe los cambios confirmados (ej. hub websocket). No debe bloquear.
type StockNotifier interface {
	StockChanged(ev StockEvent)
}

// MovementMetrics registra el resultado de cada operación del registrador.
type MovementMetrics interface {
	ObserveMovement(operation, outcome string, elapsed time.Duration)
}

// MovementReportGenerator genera el PDF de un listado de movimientos.
type MovementReportGenerator interface {
	GenerateMovementReport(
		ctx context.Context,
		title string,
		kind entity.MovementKind,
		rows []*entity.MovementView,
		generatedAt time.Time,
	) ([]byte, error)
}
