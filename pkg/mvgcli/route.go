package mvgcli

import (
	"errors"
	"fmt"
	"time"

	"github.com/travigo/mvg/pkg/departurefilter"
	"github.com/travigo/mvg/pkg/fahrinfo"
	"github.com/travigo/mvg/pkg/mvg"
	"github.com/travigo/mvg/pkg/util"
	"github.com/urfave/cli/v2"
)

func routeCommand(runtime *Runtime) *cli.Command {
	return &cli.Command{
		Name:      "route",
		Usage:     "find connections between two stations",
		ArgsUsage: "<from> <to>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "arrival",
				Usage: "treat --time as the latest arrival",
			},
			&cli.StringFlag{
				Name:  "time",
				Usage: "departure or arrival time, 15:04 or RFC 3339",
			},
			&cli.IntFlag{
				Name:  "change-limit",
				Usage: "maximum number of changes",
			},
			&cli.DurationFlag{
				Name:  "max-walk",
				Usage: "maximum walk to the first and from the last station",
			},
			&cli.StringFlag{
				Name:  "exclude",
				Usage: "comma separated products to avoid, e.g. BUS,TRAM",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("route needs exactly two stations")
			}

			from, err := ResolveStation(c.Context, runtime.Client, c.Args().Get(0))
			if err != nil {
				return err
			}
			to, err := ResolveStation(c.Context, runtime.Client, c.Args().Get(1))
			if err != nil {
				return err
			}

			query, err := routingQuery(c, runtime.Now(), from.ID, to.ID)
			if err != nil {
				return err
			}

			var connections []fahrinfo.Connection
			var fetchErr error
			err = runtime.withSpinner(fmt.Sprintf("Routing %s -> %s...", from.Name, to.Name), func() {
				connections, fetchErr = runtime.Client.ConnectionsWithQuery(c.Context, query)
			})
			if err != nil {
				return err
			}
			if fetchErr != nil {
				return fmt.Errorf("routing %s -> %s: %w", from.Name, to.Name, fetchErr)
			}

			runtime.Printer.Connections(connections)
			return nil
		},
	}
}

func routingQuery(c *cli.Context, now time.Time, fromID string, toID string) (mvg.RoutingQuery, error) {
	query := mvg.RoutingQuery{
		FromStation:          fromID,
		ToStation:            toID,
		Arrival:              c.Bool("arrival"),
		MaxWalkToStation:     c.Duration("max-walk"),
		MaxWalkToDestination: c.Duration("max-walk"),
	}

	if value := c.String("time"); value != "" {
		parsed, err := util.ParseClockOrTimestamp(value, now)
		if err != nil {
			return query, fmt.Errorf("invalid --time %q: %w", value, err)
		}
		query.Time = parsed
	}

	if c.IsSet("change-limit") {
		limit := c.Int("change-limit")
		query.ChangeLimit = &limit
	}

	excluded, err := departurefilter.ParseProducts(c.String("exclude"))
	if err != nil {
		return query, err
	}
	if err := query.Exclude(excluded...); err != nil {
		return query, err
	}

	return query, nil
}
