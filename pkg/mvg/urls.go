package mvg

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/travigo/mvg/pkg/fahrinfo"
)

const DefaultBaseURL = "https://www.mvg.de"

const (
	locationQueryPath  = "/api/fahrinfo/location/queryWeb"
	locationNearbyPath = "/api/fahrinfo/location/nearby"
	departurePath      = "/api/fahrinfo/departure/"
	routingPath        = "/api/fahrinfo/routing/"
	interruptionsPath  = "/.rest/betriebsaenderungen/api/interruptions"
)

// URLBuilder renders the upstream request URLs. It does no I/O and no
// validation beyond escaping.
type URLBuilder struct {
	Base string
}

func NewURLBuilder(base string) URLBuilder {
	return URLBuilder{Base: strings.TrimSuffix(base, "/")}
}

func (b URLBuilder) StationsByName(term string) string {
	return b.Base + locationQueryPath + "?q=" + EscapeAll(term)
}

// StationByID uses the departure endpoint; upstream serves both from one path.
func (b URLBuilder) StationByID(id string) string {
	return b.Departures(id)
}

func (b URLBuilder) Departures(id string) string {
	return b.Base + departurePath + id + "?footway=0"
}

func (b URLBuilder) Nearby(latitude float64, longitude float64) string {
	return b.Base + locationNearbyPath + "?latitude=" + formatFloat(latitude) + "&longitude=" + formatFloat(longitude)
}

func (b URLBuilder) Routing(query RoutingQuery) string {
	params := []string{
		"fromStation=" + query.FromStation,
		"toStation=" + query.ToStation,
	}
	params = append(params, query.options()...)

	return b.Base + routingPath + "?" + strings.Join(params, "&")
}

func (b URLBuilder) Interruptions() string {
	return b.Base + interruptionsPath
}

// RoutingQuery describes a routing request. Only FromStation and ToStation
// are required; zero values for the rest leave the upstream defaults alone.
type RoutingQuery struct {
	FromStation string
	ToStation   string

	// Time is the desired departure, or arrival when Arrival is set.
	Time    time.Time
	Arrival bool

	MaxWalkToStation     time.Duration
	MaxWalkToDestination time.Duration

	// ChangeLimit caps the number of transfers. nil means no cap.
	ChangeLimit *int

	ExcludeUBahn bool
	ExcludeBus   bool
	ExcludeTram  bool
	ExcludeSBahn bool
}

func (q RoutingQuery) options() []string {
	var params []string

	if !q.Time.IsZero() {
		params = append(params, "time="+strconv.FormatInt(q.Time.UnixMilli(), 10))
	}
	if q.Arrival {
		params = append(params, "arrival=true")
	}
	if q.MaxWalkToStation > 0 {
		params = append(params, "maxTravelTimeFootwayToStation="+strconv.Itoa(int(q.MaxWalkToStation.Minutes())))
	}
	if q.MaxWalkToDestination > 0 {
		params = append(params, "maxTravelTimeFootwayToDestination="+strconv.Itoa(int(q.MaxWalkToDestination.Minutes())))
	}
	if q.ChangeLimit != nil {
		params = append(params, "changeLimit="+strconv.Itoa(*q.ChangeLimit))
	}
	if q.ExcludeUBahn {
		params = append(params, "transportTypeUnderground=false")
	}
	if q.ExcludeBus {
		params = append(params, "transportTypeBus=false")
	}
	if q.ExcludeTram {
		params = append(params, "transportTypeTram=false")
	}
	if q.ExcludeSBahn {
		params = append(params, "transportTypeSBahn=false")
	}

	return params
}

// Exclude switches off the given products. Regional trains have no switch
// upstream and are rejected.
func (q *RoutingQuery) Exclude(products ...fahrinfo.Product) error {
	for _, product := range products {
		switch product {
		case fahrinfo.ProductUBahn:
			q.ExcludeUBahn = true
		case fahrinfo.ProductBus:
			q.ExcludeBus = true
		case fahrinfo.ProductTram:
			q.ExcludeTram = true
		case fahrinfo.ProductSBahn:
			q.ExcludeSBahn = true
		default:
			return fmt.Errorf("%s cannot be excluded from routing", product.DisplayName())
		}
	}
	return nil
}

func (q RoutingQuery) subject() string {
	return q.FromStation + " - " + q.ToStation
}

const upperhex = "0123456789ABCDEF"

// EscapeAll percent-encodes every byte that is not an ASCII letter or digit.
func EscapeAll(s string) string {
	var builder strings.Builder
	builder.Grow(len(s) * 3)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			builder.WriteByte(c)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(upperhex[c>>4])
		builder.WriteByte(upperhex[c&15])
	}

	return builder.String()
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
