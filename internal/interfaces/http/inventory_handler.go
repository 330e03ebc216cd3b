package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/application/inventory"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
)

// MovementRecorder escrituras de stock (inventory.RegisterMovementUseCase).
type MovementRecorder interface {
	RegisterInputFromRequest(ctx context.Context, actor entity.Actor, in dto.RegisterInputRequest) dto.OperationResult
	RegisterOutputFromRequest(ctx context.Context, actor entity.Actor, in dto.RegisterOutputRequest) dto.OperationResult
	RegisterAdjustmentFromRequest(ctx context.Context, actor entity.Actor, in dto.RegisterAdjustmentRequest) dto.OperationResult
}

// MovementLister lecturas del libro (inventory.MovementQueryUseCase).
type MovementLister interface {
	ListMovements(ctx context.Context, kind entity.MovementKind, page dto.PageRequest) ([]*entity.MovementView, error)
}

// MovementReporter PDF de movimientos (inventory.MovementReportUseCase).
type MovementReporter interface {
	DownloadMovementReport(ctx context.Context, kind entity.MovementKind) ([]byte, string, error)
}

// InventoryHandler maneja las peticiones HTTP de movimientos de stock (protegido).
type InventoryHandler struct {
	recorder MovementRecorder
	query    MovementLister
	report   MovementReporter
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(recorder MovementRecorder, query MovementLister, report MovementReporter) *InventoryHandler {
	return &InventoryHandler{recorder: recorder, query: query, report: report}
}

// RegisterInput godoc
// @Summary      Registrar entrada
// @Description  Crea un lote a partir de un producto maestro con su movimiento INPUT y auditoría.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterInputRequest  true  "master_product_id, quantity, unit, movement_category, receiver, type"
// @Success      201   {object}  dto.OperationResult
// @Failure      400   {object}  dto.OperationResult
// @Failure      422   {object}  dto.OperationResult
// @Failure      500   {object}  dto.OperationResult
// @Router       /api/inventory/inputs [post]
func (h *InventoryHandler) RegisterInput(c *fiber.Ctx) error {
	var in dto.RegisterInputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(invalidBody)
	}
	res := h.recorder.RegisterInputFromRequest(c.UserContext(), GetActor(c), in)
	return c.Status(resultStatus(res)).JSON(res)
}

// RegisterOutput godoc
// @Summary      Registrar salida
// @Description  Descuenta stock convirtiendo la unidad declarada a la del producto. Rechaza si el stock quedaría negativo.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterOutputRequest  true  "product_id, quantity, unit, movement_category"
// @Success      201   {object}  dto.OperationResult
// @Failure      400   {object}  dto.OperationResult
// @Failure      422   {object}  dto.OperationResult
// @Failure      500   {object}  dto.OperationResult
// @Router       /api/inventory/outputs [post]
func (h *InventoryHandler) RegisterOutput(c *fiber.Ctx) error {
	var in dto.RegisterOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(invalidBody)
	}
	res := h.recorder.RegisterOutputFromRequest(c.UserContext(), GetActor(c), in)
	return c.Status(resultStatus(res)).JSON(res)
}

// RegisterAdjustment godoc
// @Summary      Registrar ajuste
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAdjustmentRequest  true  "product_id, quantity, unit, movement_category, adjustment_type"
// @Success      201   {object}  dto.OperationResult
// @Failure      400   {object}  dto.OperationResult
// @Failure      422   {object}  dto.OperationResult
// @Failure      500   {object}  dto.OperationResult
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) RegisterAdjustment(c *fiber.Ctx) error {
	var in dto.RegisterAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(invalidBody)
	}
	res := h.recorder.RegisterAdjustmentFromRequest(c.UserContext(), GetActor(c), in)
	return c.Status(resultStatus(res)).JSON(res)
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Description  Movimientos de una familia unidos con su producto, del más reciente al más antiguo. Sin limit devuelve todos.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        kind    query  string  true   "INPUT | OUTPUT | ADJUSTMENT"
// @Param        limit   query  int     false  "máximo 500"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	kind := entity.MovementKind(strings.ToUpper(c.Query("kind")))
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil || page.Limit < 0 || page.Offset < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit y offset deben ser enteros no negativos"})
	}
	if page.Limit > 500 {
		page.Limit = 500
	}
	rows, err := h.query.ListMovements(c.UserContext(), kind, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MovementListResponse{
		Kind:  string(kind),
		Items: inventory.ToMovementResponses(rows),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// DownloadReport godoc
// @Summary      Reporte PDF de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        kind  query  string  true  "INPUT | OUTPUT | ADJUSTMENT"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/report [get]
func (h *InventoryHandler) DownloadReport(c *fiber.Ctx) error {
	kind := entity.MovementKind(strings.ToUpper(c.Query("kind")))
	pdf, filename, err := h.report.DownloadMovementReport(c.UserContext(), kind)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
