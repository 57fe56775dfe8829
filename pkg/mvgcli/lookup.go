package mvgcli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/mvg/pkg/fahrinfo"
	"github.com/travigo/mvg/pkg/mvg"
)

var ErrNoStation = errors.New("no station found")

type StationFinder interface {
	StationsByID(ctx context.Context, id string) ([]fahrinfo.Location, error)
	StationsByName(ctx context.Context, term string) ([]fahrinfo.Location, error)
}

// ResolveStation treats query as a station id first and falls back to a name
// search when the id is unknown upstream or cannot form a request path, as
// with names containing '%'. Transport failures are returned as they are.
func ResolveStation(ctx context.Context, finder StationFinder, query string) (*fahrinfo.Station, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty station query", ErrNoStation)
	}

	locations, err := finder.StationsByID(ctx, query)
	switch {
	case err == nil:
		if stations := fahrinfo.Stations(locations); len(stations) > 0 {
			return stations[0], nil
		}
	case mvg.IsNotFound(err) || errors.Is(err, mvg.ErrDecode) || errors.Is(err, mvg.ErrInvalidRequestTarget):
		log.Debug().Err(err).Str("query", query).Msg("Station id lookup failed, searching by name")
	default:
		return nil, err
	}

	locations, err = finder.StationsByName(ctx, query)
	if err != nil {
		return nil, err
	}

	stations := fahrinfo.Stations(locations)
	if len(stations) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoStation, query)
	}
	return stations[0], nil
}
