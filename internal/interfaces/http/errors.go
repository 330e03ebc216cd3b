package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/domain"
)

// writeError traduce errores de dominio a HTTP. El detalle técnico no se expone.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el registro ya existe"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// resultStatus código HTTP de un dto.OperationResult.
func resultStatus(res dto.OperationResult) int {
	switch res.Reason {
	case dto.ReasonNone:
		return fiber.StatusCreated
	case dto.ReasonInvalidFields:
		return fiber.StatusBadRequest
	case dto.ReasonIncompatibleUnits, dto.ReasonInsufficientStock:
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// invalidBody respuesta para un cuerpo JSON que no se pudo leer.
var invalidBody = dto.OperationResult{
	Title:       "Campos inválidos",
	Description: "Revise los campos del formulario e intente nuevamente.",
	Reason:      dto.ReasonInvalidFields,
}
