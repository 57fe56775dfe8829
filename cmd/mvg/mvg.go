package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/mvg/pkg/api"
	"github.com/travigo/mvg/pkg/config"
	"github.com/travigo/mvg/pkg/mvgcli"
	"github.com/travigo/mvg/pkg/util"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	// Departure times are shown in Munich time
	if loc, err := time.LoadLocation("Europe/Berlin"); err == nil {
		time.Local = loc
	}

	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	environment := util.GetEnvironmentVariables()
	util.SetupLogging(os.Stderr, environment)

	configPath, err := config.Path(environment)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	cfg, err := config.Load(configPath, environment)
	if err != nil {
		log.Warn().Err(err).Msg("Using default configuration")
	}

	runtime := mvgcli.NewRuntime(cfg, os.Stdout)

	app := &cli.App{
		Name:        "mvg",
		Usage:       "Munich public transport from the command line",
		Description: "Searches stations, departures and connections of the MVG",

		Commands: append(
			mvgcli.RegisterCLI(runtime),
			api.RegisterCLI(runtime.Client),
		),
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
