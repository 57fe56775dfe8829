package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/mvg/pkg/api"
	"github.com/travigo/mvg/pkg/config"
	"github.com/travigo/mvg/pkg/mvg"
	"github.com/travigo/mvg/pkg/util"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	// Clock times in queries are Munich time
	if loc, err := time.LoadLocation("Europe/Berlin"); err == nil {
		time.Local = loc
	}

	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	environment := util.GetEnvironmentVariables()
	util.SetupLogging(os.Stdout, environment)

	configPath, err := config.Path(environment)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	cfg, err := config.Load(configPath, environment)
	if err != nil {
		log.Warn().Err(err).Msg("Using default configuration")
	}

	app := &cli.App{
		Name: "web-api",
		Commands: []*cli.Command{
			api.RegisterCLI(mvg.NewClient(cfg.ClientOptions()...)),
		},
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
