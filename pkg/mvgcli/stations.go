package mvgcli

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

func stationsCommand(runtime *Runtime) *cli.Command {
	return &cli.Command{
		Name:      "stations",
		Usage:     "search stations by name",
		ArgsUsage: "[term]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "dump the decoded locations",
			},
		},
		Action: func(c *cli.Context) error {
			term := strings.Join(c.Args().Slice(), " ")

			locations, err := runtime.Client.StationsByName(c.Context, term)
			if err != nil {
				return fmt.Errorf("searching stations: %w", err)
			}

			if c.Bool("raw") {
				pretty.Fprintf(runtime.Out, "%# v\n", locations)
				return nil
			}

			runtime.Printer.Stations(locations)
			return nil
		},
	}
}
