package mvgcli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/mvg/pkg/departurefilter"
	"github.com/travigo/mvg/pkg/fahrinfo"
	"github.com/travigo/mvg/pkg/util"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

const maxConcurrentBoards = 8

type stationBoard struct {
	index      int
	query      string
	station    *fahrinfo.Station
	departures []fahrinfo.Departure
	err        error
}

func departuresCommand(runtime *Runtime) *cli.Command {
	return &cli.Command{
		Name:      "departures",
		Usage:     "show the next departures of one or more stations",
		ArgsUsage: "[station id or name...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "filter",
				Usage: "expression over product, label, destination, live, cancelled, sev, platform and minutes",
			},
			&cli.StringFlag{
				Name:  "product",
				Usage: "comma separated products to keep, e.g. UBAHN,SBAHN",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "maximum departures per station, 0 for all",
			},
		},
		Action: func(c *cli.Context) error {
			queries := util.RemoveDuplicateStrings(c.Args().Slice(), nil)
			if len(queries) == 0 && runtime.Config.DefaultStation != "" {
				queries = []string{runtime.Config.DefaultStation}
			}
			if len(queries) == 0 {
				return errors.New("no station given and no default_station configured")
			}

			filter, err := departurefilter.Compile(c.String("filter"))
			if err != nil {
				return err
			}
			products, err := departurefilter.ParseProducts(c.String("product"))
			if err != nil {
				return err
			}

			boards := fetchBoards(c.Context, runtime, queries)
			now := runtime.Now()

			failed := 0
			for i, board := range boards {
				if i > 0 {
					fmt.Fprintln(runtime.Out)
				}
				if board.err != nil {
					failed++
					log.Debug().Err(board.err).Str("station", board.query).Msg("Departure board failed")
					runtime.Printer.Error(board.err)
					continue
				}

				departures := board.departures
				departurefilter.ByProducts(&departures, products)
				if err := filter.Apply(&departures, now); err != nil {
					return err
				}
				if limit := c.Int("limit"); limit > 0 && len(departures) > limit {
					departures = departures[:limit]
				}

				runtime.Printer.Departures(board.station, departures, now)
			}

			if failed == len(boards) {
				return fmt.Errorf("no departures could be fetched: %w", boards[0].err)
			}
			return nil
		},
	}
}

// fetchBoards resolves and fetches every station concurrently. Results are
// returned in query order.
func fetchBoards(ctx context.Context, runtime *Runtime, queries []string) []stationBoard {
	p := pool.NewWithResults[stationBoard]().WithMaxGoroutines(maxConcurrentBoards)

	for index, query := range queries {
		p.Go(func() stationBoard {
			board := stationBoard{index: index, query: query}

			board.station, board.err = ResolveStation(ctx, runtime.Client, query)
			if board.err != nil {
				return board
			}

			board.departures, board.err = runtime.Client.DeparturesByID(ctx, board.station.ID)
			if board.err == nil {
				departurefilter.SortByTime(board.departures)
			}
			return board
		})
	}

	boards := p.Wait()
	slices.SortFunc(boards, func(a, b stationBoard) int {
		return a.index - b.index
	})
	return boards
}
