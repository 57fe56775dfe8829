package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/mvg/pkg/mvg"
)

// LocalsUpstreamErrorKey holds the failure kind of the upstream request, for
// the logging and metrics middleware.
const LocalsUpstreamErrorKey = "upstream-error"

// ErrorKind names the mvg failure kind of err.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, mvg.ErrInvalidRequestTarget):
		return "invalid_request_target"
	case errors.Is(err, mvg.ErrUnexpectedStatus):
		return "unexpected_status"
	case errors.Is(err, mvg.ErrDecode):
		return "decode"
	case errors.Is(err, mvg.ErrTransport):
		return "transport"
	}
	return "unknown"
}

func upstreamStatus(err error) int {
	switch {
	case errors.Is(err, mvg.ErrInvalidRequestTarget):
		return fiber.StatusBadRequest
	case errors.Is(err, mvg.ErrUnexpectedStatus):
		return fiber.StatusNotFound
	case errors.Is(err, mvg.ErrDecode):
		return fiber.StatusBadGateway
	case errors.Is(err, mvg.ErrTransport):
		return fiber.StatusGatewayTimeout
	}
	return fiber.StatusInternalServerError
}

func upstreamError(c *fiber.Ctx, err error) error {
	c.Locals(LocalsUpstreamErrorKey, ErrorKind(err))

	response := fiber.Map{
		"error": err.Error(),
		"kind":  ErrorKind(err),
	}

	var mvgErr *mvg.Error
	if errors.As(err, &mvgErr) {
		response["subject"] = mvgErr.Subject
		if mvgErr.StatusCode != 0 {
			response["upstreamStatus"] = mvgErr.StatusCode
		}
	}

	c.Status(upstreamStatus(err))
	return c.JSON(response)
}

func badRequest(c *fiber.Ctx, message string) error {
	c.Status(fiber.StatusBadRequest)
	return c.JSON(fiber.Map{
		"error": message,
	})
}
