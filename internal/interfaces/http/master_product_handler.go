package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
)

// MasterCatalog catálogo de productos maestros (usecase.MasterProductUseCase).
type MasterCatalog interface {
	Create(ctx context.Context, actor entity.Actor, in dto.CreateMasterProductRequest) (*dto.MasterProductResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MasterProductResponse, error)
	List(ctx context.Context, page dto.PageRequest) (*dto.MasterProductListResponse, error)
}

// MasterProductHandler maneja el catálogo de productos maestros (protegido).
type MasterProductHandler struct {
	uc MasterCatalog
}

// NewMasterProductHandler construye el handler.
func NewMasterProductHandler(uc MasterCatalog) *MasterProductHandler {
	return &MasterProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto maestro
// @Tags         master-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMasterProductRequest  true  "name, base_unit (KG, G, L, UN, CX)"
// @Success      201   {object}  dto.MasterProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/master-products [post]
func (h *MasterProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMasterProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto maestro
// @Tags         master-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto maestro"
// @Success      200  {object}  dto.MasterProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/master-products/{id} [get]
func (h *MasterProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto maestro no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo
// @Tags         master-products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite (default 50, máx 500)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.MasterProductListResponse
// @Router       /api/master-products [get]
func (h *MasterProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
