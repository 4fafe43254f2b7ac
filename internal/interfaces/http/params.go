package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/domain"
)

// pathID devuelve el parámetro :id ya decodificado (Fiber lo entrega con %XX).
func pathID(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	id, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, raw)
	}
	return id, nil
}
