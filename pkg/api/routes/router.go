package routes

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/mvg/pkg/fahrinfo"
	"github.com/travigo/mvg/pkg/mvg"
)

// Upstream is the part of mvg.Client the routes use.
type Upstream interface {
	StationsByName(ctx context.Context, term string) ([]fahrinfo.Location, error)
	StationsNearby(ctx context.Context, latitude float64, longitude float64) ([]fahrinfo.Location, error)
	DepartureInfo(ctx context.Context, stationID string) (*fahrinfo.DepartureInfo, error)
	ConnectionsWithQuery(ctx context.Context, query mvg.RoutingQuery) ([]fahrinfo.Connection, error)
	Interruptions(ctx context.Context) (json.RawMessage, error)
}

type handlers struct {
	upstream Upstream
}

func MVGRouter(router fiber.Router, upstream Upstream) {
	h := &handlers{upstream: upstream}

	router.Get("/stations", h.searchStations)
	router.Get("/stations/nearby", h.nearbyStations)
	router.Get("/stations/:identifier/departures", h.getStationDepartures)
	router.Get("/connections", h.listConnections)
	router.Get("/interruptions", h.listInterruptions)
}
