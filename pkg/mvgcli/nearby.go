package mvgcli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
)

func nearbyCommand(runtime *Runtime) *cli.Command {
	return &cli.Command{
		Name:      "nearby",
		Usage:     "list stations close to a coordinate",
		ArgsUsage: "<latitude> <longitude>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("nearby needs a latitude and a longitude")
			}

			latitude, err := strconv.ParseFloat(c.Args().Get(0), 64)
			if err != nil {
				return fmt.Errorf("invalid latitude: %w", err)
			}
			longitude, err := strconv.ParseFloat(c.Args().Get(1), 64)
			if err != nil {
				return fmt.Errorf("invalid longitude: %w", err)
			}

			locations, err := runtime.Client.StationsNearby(c.Context, latitude, longitude)
			if err != nil {
				return err
			}

			runtime.Printer.Nearby(locations)
			return nil
		},
	}
}
