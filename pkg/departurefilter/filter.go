// Package departurefilter narrows departure boards with user supplied
// expressions such as `product == "UBAHN" && minutes < 10`.
package departurefilter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/mvg/pkg/fahrinfo"
	"github.com/travigo/mvg/pkg/util"
	"golang.org/x/exp/slices"
)

// Candidate is the environment an expression is evaluated against.
type Candidate struct {
	Product     string `expr:"product"`
	Label       string `expr:"label"`
	Destination string `expr:"destination"`
	Live        bool   `expr:"live"`
	Cancelled   bool   `expr:"cancelled"`
	Sev         bool   `expr:"sev"`
	Platform    string `expr:"platform"`
	Minutes     int    `expr:"minutes"`
}

func NewCandidate(departure fahrinfo.Departure, now time.Time) Candidate {
	return Candidate{
		Product:     string(departure.Product),
		Label:       departure.Label,
		Destination: departure.Destination,
		Live:        departure.Live,
		Cancelled:   departure.Cancelled,
		Sev:         departure.Sev,
		Platform:    departure.Platform,
		Minutes:     departure.MinutesUntil(now),
	}
}

type Filter struct {
	source  string
	program *vm.Program
}

// Compile checks the expression against the Candidate fields and requires a
// boolean result. An empty expression matches everything.
func Compile(source string) (*Filter, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return &Filter{}, nil
	}

	program, err := expr.Compile(source, expr.Env(Candidate{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid departure filter %q: %w", source, err)
	}

	return &Filter{source: source, program: program}, nil
}

func (f *Filter) String() string {
	return f.source
}

func (f *Filter) Match(departure fahrinfo.Departure, now time.Time) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	output, err := expr.Run(f.program, NewCandidate(departure, now))
	if err != nil {
		return false, fmt.Errorf("evaluating departure filter %q: %w", f.source, err)
	}
	return output.(bool), nil
}

// Apply keeps the departures matching f, in place. Evaluation errors drop the
// departure and the first one is returned.
func (f *Filter) Apply(departures *[]fahrinfo.Departure, now time.Time) error {
	var firstErr error

	util.InPlaceFilter(departures, func(departure fahrinfo.Departure) bool {
		matched, err := f.Match(departure, now)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return matched
	})

	return firstErr
}

// ByProducts keeps only departures of the given products. No products keeps all.
func ByProducts(departures *[]fahrinfo.Departure, products []fahrinfo.Product) {
	if len(products) == 0 {
		return
	}

	util.InPlaceFilter(departures, func(departure fahrinfo.Departure) bool {
		return slices.Contains(products, departure.Product)
	})
}

// ParseProducts reads a comma separated product list like "UBAHN,sbahn".
func ParseProducts(list string) ([]fahrinfo.Product, error) {
	var products []fahrinfo.Product

	for _, token := range strings.Split(list, ",") {
		token = strings.ToUpper(strings.TrimSpace(token))
		if token == "" {
			continue
		}

		product, err := fahrinfo.ParseProduct(token)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(products, product) {
			products = append(products, product)
		}
	}

	return products, nil
}

// SortByTime orders departures by departure time, keeping upstream order for ties.
func SortByTime(departures []fahrinfo.Departure) {
	slices.SortStableFunc(departures, func(a, b fahrinfo.Departure) int {
		switch {
		case a.DepartureTime < b.DepartureTime:
			return -1
		case a.DepartureTime > b.DepartureTime:
			return 1
		}
		return 0
	})
}
