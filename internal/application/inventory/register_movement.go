package inventory

import (
	"context"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
)

// RegisterInputFromRequest adapta el request HTTP al caso de uso RegisterInput.
func (uc *RegisterMovementUseCase) RegisterInputFromRequest(ctx context.Context, actor entity.Actor, in dto.RegisterInputRequest) dto.OperationResult {
	return uc.RegisterInput(ctx, actor, InputCommand{
		MasterProductID: in.MasterProductID,
		Name:            in.Name,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
		Category:        in.MovementCategory,
		Lot:             in.Lot,
		ExpiryDate:      in.ExpiryDate,
		ReceiptDate:     in.ReceiptDate,
		Receiver:        in.Receiver,
		Supplier:        in.Supplier,
		Type:            in.Type,
	})
}

// RegisterOutputFromRequest adapta el request HTTP al caso de uso RegisterOutput.
func (uc *RegisterMovementUseCase) RegisterOutputFromRequest(ctx context.Context, actor entity.Actor, in dto.RegisterOutputRequest) dto.OperationResult {
	return uc.RegisterOutput(ctx, actor, OutputCommand{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Category:  in.MovementCategory,
	})
}

// RegisterAdjustmentFromRequest adapta el request HTTP al caso de uso RegisterAdjustment.
func (uc *RegisterMovementUseCase) RegisterAdjustmentFromRequest(ctx context.Context, actor entity.Actor, in dto.RegisterAdjustmentRequest) dto.OperationResult {
	return uc.RegisterAdjustment(ctx, actor, AdjustmentCommand{
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		Category:       in.MovementCategory,
		AdjustmentType: in.AdjustmentType,
	})
}
