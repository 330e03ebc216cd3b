package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/domain"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
	"github.com/jhoicas/banco-alimentos/pkg/logger"
)

// MovementQueryUseCase consultas de solo lectura sobre el libro de movimientos.
// A diferencia de las escrituras, los errores se registran y se devuelven sin traducir.
type MovementQueryUseCase struct {
	movRepo repository.StockMovementRepository
	log     *logger.Logger
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.StockMovementRepository, log *logger.Logger) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, log: log.Component("stock-query")}
}

// ListMovements devuelve los movimientos de la familia kind (INPUT, OUTPUT o ADJUSTMENT) unidos con
// su producto, del más reciente al más antiguo. page.Limit 0 = sin límite.
func (uc *MovementQueryUseCase) ListMovements(ctx context.Context, kind entity.MovementKind, page dto.PageRequest) ([]*entity.MovementView, error) {
	types := kind.Types()
	if types == nil {
		return nil, fmt.Errorf("%w: familia de movimientos %q", domain.ErrInvalidInput, kind)
	}
	rows, err := uc.movRepo.ListByTypes(ctx, repository.MovementFilter{
		Types:  types,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("kind", string(kind)).Msg("listar movimientos")
		return nil, err
	}
	return rows, nil
}

// ListInputs movimientos de entrada.
func (uc *MovementQueryUseCase) ListInputs(ctx context.Context) ([]*entity.MovementView, error) {
	return uc.ListMovements(ctx, entity.MovementKindInput, dto.PageRequest{})
}

// ListOutputs movimientos de salida.
func (uc *MovementQueryUseCase) ListOutputs(ctx context.Context) ([]*entity.MovementView, error) {
	return uc.ListMovements(ctx, entity.MovementKindOutput, dto.PageRequest{})
}

// ListAdjustments ajustes positivos y negativos.
func (uc *MovementQueryUseCase) ListAdjustments(ctx context.Context) ([]*entity.MovementView, error) {
	return uc.ListMovements(ctx, entity.MovementKindAdjustment, dto.PageRequest{})
}

// ToMovementResponses convierte las filas del libro al DTO de salida.
func ToMovementResponses(rows []*entity.MovementView) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			ProductUnit: string(m.ProductUnit),
			Lot:         m.Lot,
			Type:        string(m.Type),
			Category:    m.Category,
			Quantity:    m.Quantity,
			Unit:        string(m.Unit),
			Details:     m.Details,
			CreatedBy:   m.CreatedBy,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out
}
