package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/mvg/pkg/mvg"
	"github.com/urfave/cli/v2"
)

func RegisterCLI(client *mvg.Client) *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Serves the MVG client over HTTP",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					log.Info().Str("listen", c.String("listen")).Str("upstream", client.URLs().Base).Msg("Starting web API")

					return SetupServer(c.String("listen"), client)
				},
			},
		},
	}
}
