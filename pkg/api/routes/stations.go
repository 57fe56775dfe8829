package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (h *handlers) searchStations(c *fiber.Ctx) error {
	locations, err := h.upstream.StationsByName(c.UserContext(), c.Query("q"))
	if err != nil {
		return upstreamError(c, err)
	}

	return c.JSON(fiber.Map{
		"locations": locations,
	})
}

func (h *handlers) nearbyStations(c *fiber.Ctx) error {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return badRequest(c, "Parameter latitude must be a number")
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return badRequest(c, "Parameter longitude must be a number")
	}

	locations, err := h.upstream.StationsNearby(c.UserContext(), latitude, longitude)
	if err != nil {
		return upstreamError(c, err)
	}

	return c.JSON(fiber.Map{
		"locations": locations,
	})
}
