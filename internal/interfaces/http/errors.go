package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
)

// errorMapping asocia cada error de dominio con su status y código HTTP.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicateKey, fiber.StatusBadRequest, "DUPLICATE_KEY"},
	{domain.ErrHasDependents, fiber.StatusBadRequest, "HAS_DEPENDENTS"},
	{domain.ErrUnknownProduct, fiber.StatusBadRequest, "UNKNOWN_PRODUCT"},
	{domain.ErrUnknownLocation, fiber.StatusBadRequest, "UNKNOWN_LOCATION"},
	{domain.ErrMissingEndpoint, fiber.StatusBadRequest, "MISSING_ENDPOINT"},
	{domain.ErrSameEndpoint, fiber.StatusBadRequest, "SAME_ENDPOINT"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
}

// writeError traduce un error de caso de uso a la respuesta JSON correspondiente.
// Los errores no mapeados (incluido ErrStoreFailure) responden 500 con el mensaje original.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
