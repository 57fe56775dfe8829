package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/mvg/pkg/fahrinfo"
	"github.com/travigo/mvg/pkg/mvg"
	"github.com/travigo/mvg/pkg/util"
)

// Checks a captured fahrinfo response against the model:
//
//	go run . connections response.json
func main() {
	util.SetupLogging(os.Stdout, util.GetEnvironmentVariables())

	if len(os.Args) != 3 {
		log.Fatal().Msg("Usage: <locations|departures|connections|station> <file>")
	}

	body, err := os.ReadFile(os.Args[2])
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	switch os.Args[1] {
	case "locations":
		locations, err := mvg.Decode[fahrinfo.Locations](body)
		if err != nil {
			log.Fatal().Err(err).Msg("Error decoding locations")
		}
		log.Info().Int("locations", len(locations.Locations)).Int("stations", len(fahrinfo.Stations(locations.Locations))).Msg("Decoded locations")
	case "departures":
		info, err := mvg.Decode[fahrinfo.DepartureInfo](body)
		if err != nil {
			log.Fatal().Err(err).Msg("Error decoding departures")
		}
		log.Info().Int("departures", len(info.Departures)).Int("servinglines", len(info.ServingLines)).Msg("Decoded departures")
	case "connections":
		list, err := mvg.Decode[fahrinfo.ConnectionList](body)
		if err != nil {
			log.Fatal().Err(err).Msg("Error decoding connections")
		}
		for _, connection := range list.ConnectionList {
			log.Info().
				Time("departure", connection.DepartureTime()).
				Str("duration", connection.Duration().String()).
				Int("parts", len(connection.ConnectionPartList)).
				Int("transfers", connection.Transfers()).
				Msg("Found connection")
		}
	case "station":
		station, err := mvg.Decode[fahrinfo.Station](body)
		if err != nil {
			log.Fatal().Err(err).Msg("Error decoding station")
		}
		log.Info().Str("id", station.ID).Str("name", station.Name).Msg("Decoded station")
	default:
		log.Fatal().Str("kind", os.Args[1]).Msg("Unknown response kind")
	}
}
