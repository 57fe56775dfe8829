package routes

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/mvg/pkg/departurefilter"
	"github.com/travigo/mvg/pkg/fahrinfo"
	"github.com/travigo/mvg/pkg/mvg"
	"github.com/travigo/mvg/pkg/util"
)

func (h *handlers) listConnections(c *fiber.Ctx) error {
	query, err := routingQueryFromRequest(c, time.Now())
	if err != nil {
		return badRequest(c, err.Error())
	}

	connections, err := h.upstream.ConnectionsWithQuery(c.UserContext(), query)
	if err != nil {
		return upstreamError(c, err)
	}

	return c.JSON(fahrinfo.ConnectionList{ConnectionList: connections})
}

func routingQueryFromRequest(c *fiber.Ctx, now time.Time) (mvg.RoutingQuery, error) {
	query := mvg.RoutingQuery{
		FromStation: c.Query("from"),
		ToStation:   c.Query("to"),
		Arrival:     c.QueryBool("arrival", false),
	}
	if query.FromStation == "" || query.ToStation == "" {
		return query, errors.New("parameters from and to are required")
	}

	if value := c.Query("time"); value != "" {
		parsed, err := util.ParseClockOrTimestamp(value, now)
		if err != nil {
			return query, errors.New("parameter time should be an RFC3339/ISO8601 datetime or HH:MM")
		}
		query.Time = parsed
	}

	var err error
	if query.MaxWalkToStation, err = walkDuration(c.Query("maxWalkToStation"), now); err != nil {
		return query, fmt.Errorf("parameter maxWalkToStation: %w", err)
	}
	if query.MaxWalkToDestination, err = walkDuration(c.Query("maxWalkToDestination"), now); err != nil {
		return query, fmt.Errorf("parameter maxWalkToDestination: %w", err)
	}

	if value := c.Query("changeLimit"); value != "" {
		limit := c.QueryInt("changeLimit", -1)
		if limit < 0 {
			return query, errors.New("parameter changeLimit must be a non-negative integer")
		}
		query.ChangeLimit = &limit
	}

	excluded, err := departurefilter.ParseProducts(c.Query("exclude"))
	if err != nil {
		return query, err
	}
	if err := query.Exclude(excluded...); err != nil {
		return query, err
	}

	return query, nil
}

// walkDuration parses an ISO8601 duration such as PT10M relative to now.
func walkDuration(value string, now time.Time) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	duration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}

	return duration.Shift(now).Sub(now), nil
}
