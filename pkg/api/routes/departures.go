package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/mvg/pkg/departurefilter"
)

func (h *handlers) getStationDepartures(c *fiber.Ctx) error {
	stationIdentifier := c.Params("identifier")

	filter, err := departurefilter.Compile(c.Query("filter"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	products, err := departurefilter.ParseProducts(c.Query("product"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return badRequest(c, "Parameter limit must not be negative")
	}

	info, err := h.upstream.DepartureInfo(c.UserContext(), stationIdentifier)
	if err != nil {
		return upstreamError(c, err)
	}

	departurefilter.ByProducts(&info.Departures, products)
	if err := filter.Apply(&info.Departures, time.Now()); err != nil {
		return badRequest(c, err.Error())
	}
	if limit > 0 && len(info.Departures) > limit {
		info.Departures = info.Departures[:limit]
	}

	return c.JSON(info)
}
