package routes

import (
	"github.com/gofiber/fiber/v2"
)

func (h *handlers) listInterruptions(c *fiber.Ctx) error {
	raw, err := h.upstream.Interruptions(c.UserContext())
	if err != nil {
		return upstreamError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
