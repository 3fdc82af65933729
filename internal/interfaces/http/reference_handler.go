package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-sync/internal/application/usecase"
)

// ReferenceHandler expone categorías, estados y la pista aleatoria.
type ReferenceHandler struct {
	refs  *usecase.ReferenceUseCase
	hints *usecase.HintUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(refs *usecase.ReferenceUseCase, hints *usecase.HintUseCase) *ReferenceHandler {
	return &ReferenceHandler{refs: refs, hints: hints}
}

// Categories GET /api/categories
func (h *ReferenceHandler) Categories(c *fiber.Ctx) error {
	out, err := h.refs.Categories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Statuses GET /api/statuses
func (h *ReferenceHandler) Statuses(c *fiber.Ctx) error {
	out, err := h.refs.Statuses(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Hint GET /api/hint
func (h *ReferenceHandler) Hint(c *fiber.Ctx) error {
	return c.JSON(h.hints.Random())
}
