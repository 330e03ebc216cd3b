package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/domain"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/inventory"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
	"github.com/jhoicas/banco-alimentos/pkg/logger"
	"github.com/jhoicas/banco-alimentos/pkg/validator"
	"github.com/shopspring/decimal"
)

// RegisterMovementUseCase registra entradas, salidas y ajustes de stock de forma transaccional.
// Cada operación escribe producto, movimiento y auditoría en una sola transacción, con la fila
// del producto bloqueada (SELECT FOR UPDATE) mientras se evalúa la suficiencia de stock.
//
// Las tres operaciones nunca devuelven error: todo camino termina en un dto.OperationResult.
type RegisterMovementUseCase struct {
	txRunner   TxRunner
	masterRepo repository.MasterProductRepository
	log        *logger.Logger
	notifier   StockNotifier
	metrics    MovementMetrics
	now        func() time.Time
}

// Option configura dependencias opcionales del caso de uso.
type Option func(*RegisterMovementUseCase)

// WithNotifier publica cada cambio confirmado (ej. hub websocket).
func WithNotifier(n StockNotifier) Option {
	return func(uc *RegisterMovementUseCase) { uc.notifier = n }
}

// WithMetrics registra el resultado y la duración de cada operación.
func WithMetrics(m MovementMetrics) Option {
	return func(uc *RegisterMovementUseCase) { uc.metrics = m }
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *RegisterMovementUseCase) { uc.now = now }
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	masterRepo repository.MasterProductRepository,
	log *logger.Logger,
	opts ...Option,
) *RegisterMovementUseCase {
	uc := &RegisterMovementUseCase{
		txRunner:   txRunner,
		masterRepo: masterRepo,
		log:        log.Component("stock-recorder"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// InputCommand ingreso de un lote nuevo a partir de un producto maestro.
type InputCommand struct {
	MasterProductID int64           `validate:"gt=0"`
	Name            string          `validate:"max=200"`
	Quantity        decimal.Decimal `validate:"gt=0"`
	Unit            entity.Unit     `validate:"required,unit"`
	Category        string          `validate:"required,oneof=donation purchase return transfer"`
	Lot             string          `validate:"max=60"`
	ExpiryDate      *time.Time
	ReceiptDate     *time.Time
	Receiver        string `validate:"required,max=120"`
	Supplier        string `validate:"max=120"`
	Type            string `validate:"required,oneof=DONATED PURCHASED"`
}

// OutputCommand consumo de stock existente.
type OutputCommand struct {
	ProductID int64           `validate:"gt=0"`
	Quantity  decimal.Decimal `validate:"gt=0"`
	Unit      entity.Unit     `validate:"required,unit"`
	Category  string          `validate:"required,oneof=consumption sale donation return transfer"`
}

// AdjustmentCommand corrección manual, positiva o negativa.
type AdjustmentCommand struct {
	ProductID      int64           `validate:"gt=0"`
	Quantity       decimal.Decimal `validate:"gt=0"`
	Unit           entity.Unit     `validate:"required,unit"`
	Category       string          `validate:"required,oneof=correction loss_damage theft due_date general"`
	AdjustmentType string          `validate:"required,oneof=POSITIVE NEGATIVE"`
}

// operation textos visibles de cada variante.
type operation struct {
	name         string // input, output, adjustment (métricas y logs)
	noun         string // "la entrada", "la salida", "el ajuste"
	context      string // contexto del mensaje de unidades incompatibles
	successTitle string
	failureTitle string
}

var (
	opInput = operation{
		name: "input", noun: "la entrada", context: "de la entrada",
		successTitle: "Entrada registrada", failureTitle: "Error al registrar la entrada",
	}
	opOutput = operation{
		name: "output", noun: "la salida", context: "de la salida",
		successTitle: "Salida registrada", failureTitle: "Error al registrar la salida",
	}
	opAdjustment = operation{
		name: "adjustment", noun: "el ajuste", context: "del ajuste",
		successTitle: "Ajuste registrado", failureTitle: "Error al registrar el ajuste",
	}
)

// unitMismatchError compuerta de unidades: la unidad declarada no se puede expresar en la almacenada.
type unitMismatchError struct {
	stored, declared entity.Unit
	master           bool
}

func (e *unitMismatchError) Error() string {
	return fmt.Sprintf("unidad %s incompatible con %s", e.declared, e.stored)
}

func (e *unitMismatchError) Unwrap() error { return domain.ErrIncompatibleUnits }

// shortageError compuerta de suficiencia: el resultado quedaría negativo.
type shortageError struct {
	available decimal.Decimal
	unit      entity.Unit
	requested decimal.Decimal
	reqUnit   entity.Unit
}

func (e *shortageError) Error() string {
	return fmt.Sprintf("solicitado %s %s, disponible %s %s", e.requested, e.reqUnit, e.available, e.unit)
}

func (e *shortageError) Unwrap() error { return domain.ErrInsufficientStock }

// RegisterInput crea un producto a partir del producto maestro, con la cantidad y unidad declaradas
// (sin conversión), su movimiento INPUT y la auditoría correspondiente.
func (uc *RegisterMovementUseCase) RegisterInput(ctx context.Context, actor entity.Actor, cmd InputCommand) dto.OperationResult {
	start := uc.now()
	ev, err := uc.registerInput(ctx, actor, cmd)
	return uc.finish(opInput, actor, cmd.MasterProductID, start, ev, err)
}

// RegisterOutput descuenta stock de un producto existente. Rechaza si el resultado sería negativo.
func (uc *RegisterMovementUseCase) RegisterOutput(ctx context.Context, actor entity.Actor, cmd OutputCommand) dto.OperationResult {
	start := uc.now()
	var ev *StockEvent
	err := validateCommand(actor, cmd, cmd.Quantity)
	if err == nil {
		ev, err = uc.applyStockChange(ctx, actor, stockChange{
			productID: cmd.ProductID,
			quantity:  cmd.Quantity,
			unit:      cmd.Unit,
			category:  cmd.Category,
			movType:   entity.MovementTypeOutput,
			negative:  true,
		})
	}
	return uc.finish(opOutput, actor, cmd.ProductID, start, ev, err)
}

// RegisterAdjustment suma (POSITIVE) o resta (NEGATIVE) stock como corrección manual.
func (uc *RegisterMovementUseCase) RegisterAdjustment(ctx context.Context, actor entity.Actor, cmd AdjustmentCommand) dto.OperationResult {
	start := uc.now()
	var ev *StockEvent
	err := validateCommand(actor, cmd, cmd.Quantity)
	if err == nil {
		change := stockChange{
			productID: cmd.ProductID,
			quantity:  cmd.Quantity,
			unit:      cmd.Unit,
			category:  cmd.Category,
			movType:   entity.MovementTypeAdjustmentPositive,
		}
		if cmd.AdjustmentType == entity.AdjustmentNegative {
			change.movType = entity.MovementTypeAdjustmentNegative
			change.negative = true
		}
		ev, err = uc.applyStockChange(ctx, actor, change)
	}
	return uc.finish(opAdjustment, actor, cmd.ProductID, start, ev, err)
}

func validateCommand(actor entity.Actor, cmd interface{}, quantity decimal.Decimal) error {
	if actor.ID == "" {
		return fmt.Errorf("%w: usuario requerido", domain.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(cmd); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !inventory.WithinScale(quantity) {
		return fmt.Errorf("%w: cantidad con más de %d decimales", domain.ErrInvalidInput, inventory.QuantityScale)
	}
	return nil
}

func (uc *RegisterMovementUseCase) registerInput(ctx context.Context, actor entity.Actor, cmd InputCommand) (*StockEvent, error) {
	if err := validateCommand(actor, cmd, cmd.Quantity); err != nil {
		return nil, err
	}

	master, err := uc.masterRepo.GetByID(ctx, cmd.MasterProductID)
	if err != nil {
		return nil, fmt.Errorf("obtener producto maestro: %w", err)
	}
	if master == nil {
		return nil, fmt.Errorf("producto maestro %d: %w", cmd.MasterProductID, domain.ErrNotFound)
	}
	if !inventory.Compatible(master.BaseUnit, cmd.Unit) {
		return nil, &unitMismatchError{stored: master.BaseUnit, declared: cmd.Unit, master: true}
	}

	var ev *StockEvent
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		now := uc.now()
		receipt := now
		if cmd.ReceiptDate != nil {
			receipt = *cmd.ReceiptDate
		}
		name := cmd.Name
		if name == "" {
			name = master.Name
		}
		product := &entity.Product{
			MasterProductID: master.ID,
			Name:            name,
			Quantity:        cmd.Quantity,
			Unit:            cmd.Unit,
			Lot:             cmd.Lot,
			ExpiryDate:      cmd.ExpiryDate,
			ReceiptDate:     receipt,
			Receiver:        cmd.Receiver,
			Supplier:        cmd.Supplier,
			Type:            cmd.Type,
			Group:           master.Group,
			Subgroup:        master.Subgroup,
			Category:        master.Category,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if err := uc.writeLedger(ctx, movRepo, auditRepo, actor, product.ID, entity.MovementTypeInput,
			cmd.Category, cmd.Quantity, cmd.Unit, now); err != nil {
			return err
		}
		ev = &StockEvent{
			ProductID:         product.ID,
			ProductName:       product.Name,
			MovementType:      entity.MovementTypeInput,
			Category:          cmd.Category,
			Quantity:          cmd.Quantity,
			Unit:              cmd.Unit,
			ResultingQuantity: product.Quantity,
			ProductUnit:       product.Unit,
			UserID:            actor.ID,
			UserName:          actor.Name,
			At:                now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// stockChange variación sobre un producto existente (salida o ajuste).
type stockChange struct {
	productID int64
	quantity  decimal.Decimal
	unit      entity.Unit
	category  string
	movType   entity.MovementType
	negative  bool
}

// applyStockChange: bloquea la fila del producto, valida unidades, convierte, verifica suficiencia
// bajo el bloqueo y escribe movimiento, cantidad y auditoría en la misma transacción.
func (uc *RegisterMovementUseCase) applyStockChange(ctx context.Context, actor entity.Actor, ch stockChange) (*StockEvent, error) {
	var ev *StockEvent
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, ch.productID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %d: %w", ch.productID, domain.ErrNotFound)
		}
		if !inventory.Compatible(product.Unit, ch.unit) {
			return &unitMismatchError{stored: product.Unit, declared: ch.unit}
		}
		converted, err := inventory.ConvertUnit(ch.quantity, ch.unit, product.Unit)
		if err != nil {
			return err
		}
		// Misma escala que products.quantity: lo que se compara es lo que se guarda.
		converted = converted.Round(inventory.StockScale)

		result := product.Quantity.Add(converted)
		if ch.negative {
			result = product.Quantity.Sub(converted)
		}
		if result.IsNegative() {
			return &shortageError{available: product.Quantity, unit: product.Unit, requested: ch.quantity, reqUnit: ch.unit}
		}

		now := uc.now()
		if err := uc.writeLedger(ctx, movRepo, auditRepo, actor, product.ID, ch.movType,
			ch.category, ch.quantity, ch.unit, now); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, result); err != nil {
			return err
		}
		ev = &StockEvent{
			ProductID:         product.ID,
			ProductName:       product.Name,
			MovementType:      ch.movType,
			Category:          ch.category,
			Quantity:          ch.quantity,
			Unit:              ch.unit,
			ResultingQuantity: result,
			ProductUnit:       product.Unit,
			UserID:            actor.ID,
			UserName:          actor.Name,
			At:                now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// writeLedger inserta el movimiento y su registro de auditoría (mismo detalle en ambos).
func (uc *RegisterMovementUseCase) writeLedger(
	ctx context.Context,
	movRepo repository.StockMovementRepository,
	auditRepo repository.AuditLogRepository,
	actor entity.Actor,
	productID int64,
	movType entity.MovementType,
	category string,
	quantity decimal.Decimal,
	unit entity.Unit,
	now time.Time,
) error {
	details := inventory.MovementDetails(movType, category, quantity, unit, productID, now)
	mov := &entity.StockMovement{
		ProductID:     productID,
		TransactionID: uuid.New().String(),
		Type:          movType,
		Category:      category,
		Quantity:      quantity,
		Unit:          unit,
		Details:       details,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return err
	}
	return auditRepo.Create(ctx, &entity.AuditLog{
		UserID:          actor.ID,
		RecordChangedID: strconv.FormatInt(productID, 10),
		ActionType:      entity.AuditActionCreate,
		Entity:          string(movType),
		ChangedValue:    inventory.ChangedValue(quantity, unit),
		Details:         details,
		CreatedAt:       now,
	})
}

// finish traduce el resultado interno a {success, title, description}, registra logs y métricas
// y notifica el cambio confirmado. Es la frontera: ningún error sale de aquí.
func (uc *RegisterMovementUseCase) finish(
	op operation,
	actor entity.Actor,
	refID int64,
	start time.Time,
	ev *StockEvent,
	err error,
) dto.OperationResult {
	res := uc.translate(op, ev, err)
	if uc.metrics != nil {
		outcome := "success"
		if !res.Success {
			outcome = string(res.Reason)
		}
		uc.metrics.ObserveMovement(op.name, outcome, uc.now().Sub(start))
	}

	switch res.Reason {
	case dto.ReasonNone:
		uc.log.Info().Str("op", op.name).Int64("product_id", ev.ProductID).
			Str("movement_type", string(ev.MovementType)).Str("user_id", actor.ID).
			Msg("movimiento registrado")
		if uc.notifier != nil {
			uc.notifier.StockChanged(*ev)
		}
	case dto.ReasonFailure:
		uc.log.Error().Err(err).Str("op", op.name).Int64("ref_id", refID).Str("user_id", actor.ID).
			Msg("fallo al registrar movimiento")
	default:
		uc.log.Warn().Err(err).Str("op", op.name).Int64("ref_id", refID).Str("user_id", actor.ID).
			Str("reason", string(res.Reason)).Msg("movimiento rechazado")
	}
	return res
}

func (uc *RegisterMovementUseCase) translate(op operation, ev *StockEvent, err error) dto.OperationResult {
	if err == nil {
		return dto.OperationResult{
			Success: true,
			Title:   op.successTitle,
			Description: fmt.Sprintf("Se registró %s de %s %s de %s. Stock actual: %s %s.",
				op.noun, ev.Quantity, ev.Unit, ev.ProductName, ev.ResultingQuantity, ev.ProductUnit),
		}
	}

	var mismatch *unitMismatchError
	var shortage *shortageError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return dto.OperationResult{
			Title:       "Campos inválidos",
			Description: "Revise los campos del formulario e intente nuevamente.",
			Reason:      dto.ReasonInvalidFields,
		}
	case errors.As(err, &mismatch):
		subject := "del producto"
		if mismatch.master {
			subject = "del producto maestro"
		}
		return dto.OperationResult{
			Title: "Unidades incompatibles",
			Description: fmt.Sprintf("La unidad %s (%s) no es compatible con la unidad %s (%s).",
				subject, mismatch.stored, op.context, mismatch.declared),
			Reason: dto.ReasonIncompatibleUnits,
		}
	case errors.As(err, &shortage):
		return dto.OperationResult{
			Title: "Stock insuficiente",
			Description: fmt.Sprintf("La cantidad solicitada en %s (%s %s) supera el stock disponible (%s %s).",
				op.noun, shortage.requested, shortage.reqUnit, shortage.available, shortage.unit),
			Reason: dto.ReasonInsufficientStock,
		}
	case errors.Is(err, domain.ErrInsufficientStock):
		// CHECK (quantity >= 0) de la base de datos.
		return dto.OperationResult{
			Title:       "Stock insuficiente",
			Description: fmt.Sprintf("La cantidad solicitada en %s supera el stock disponible.", op.noun),
			Reason:      dto.ReasonInsufficientStock,
		}
	}
	return dto.OperationResult{
		Title:       op.failureTitle,
		Description: fmt.Sprintf("No fue posible registrar %s. Intente nuevamente.", op.noun),
		Reason:      dto.ReasonFailure,
	}
}
