// Package mvg is a client for the MVG fahrinfo API.
//
// Each Client method builds one URL, performs exactly one GET and decodes the
// complete body into the fahrinfo model. Nothing is cached, retried or logged;
// failures come back as *Error values matching one of the Err* kinds.
package mvg

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/travigo/mvg/pkg/fahrinfo"
)

type Client struct {
	urls      URLBuilder
	transport *Transport
}

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

type Option func(*clientOptions)

func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient replaces the pooled client. WithTimeout is ignored when set.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// NewClient creates a Client that is safe for concurrent use. The underlying
// http.Client and its connection pool live as long as the Client.
func NewClient(opts ...Option) *Client {
	options := clientOptions{
		baseURL: DefaultBaseURL,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		urls:      NewURLBuilder(options.baseURL),
		transport: NewTransport(httpClient, options.userAgent),
	}
}

func (c *Client) URLs() URLBuilder {
	return c.urls
}

// StationsByName searches locations by free text. An empty term is passed
// through and returns the upstream default list.
func (c *Client) StationsByName(ctx context.Context, term string) ([]fahrinfo.Location, error) {
	body, err := c.transport.Fetch(ctx, c.urls.StationsByName(term), term)
	if err != nil {
		return nil, err
	}

	locations, err := decodeFor[fahrinfo.Locations](body, term)
	if err != nil {
		return nil, err
	}
	return locations.Locations, nil
}

// StationsByID looks a station up by its id. Unknown ids surface as
// ErrUnexpectedStatus; falling back to a name search is up to the caller.
func (c *Client) StationsByID(ctx context.Context, id string) ([]fahrinfo.Location, error) {
	body, err := c.transport.Fetch(ctx, c.urls.StationByID(id), id)
	if err != nil {
		return nil, err
	}

	locations, err := decodeFor[fahrinfo.Locations](body, id)
	if err != nil {
		return nil, err
	}
	return locations.Locations, nil
}

func (c *Client) StationsNearby(ctx context.Context, latitude float64, longitude float64) ([]fahrinfo.Location, error) {
	subject := formatFloat(latitude) + "," + formatFloat(longitude)

	body, err := c.transport.Fetch(ctx, c.urls.Nearby(latitude, longitude), subject)
	if err != nil {
		return nil, err
	}

	locations, err := decodeFor[fahrinfo.Locations](body, subject)
	if err != nil {
		return nil, err
	}
	return locations.Locations, nil
}

func (c *Client) DeparturesByID(ctx context.Context, stationID string) ([]fahrinfo.Departure, error) {
	info, err := c.DepartureInfo(ctx, stationID)
	if err != nil {
		return nil, err
	}
	return info.Departures, nil
}

// DepartureInfo returns the whole departure envelope including serving lines.
func (c *Client) DepartureInfo(ctx context.Context, stationID string) (*fahrinfo.DepartureInfo, error) {
	body, err := c.transport.Fetch(ctx, c.urls.Departures(stationID), stationID)
	if err != nil {
		return nil, err
	}

	info, err := decodeFor[fahrinfo.DepartureInfo](body, stationID)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Connections returns routes between two station ids. No route is an empty
// slice, not an error.
func (c *Client) Connections(ctx context.Context, fromID string, toID string) ([]fahrinfo.Connection, error) {
	return c.ConnectionsWithQuery(ctx, RoutingQuery{FromStation: fromID, ToStation: toID})
}

func (c *Client) ConnectionsWithQuery(ctx context.Context, query RoutingQuery) ([]fahrinfo.Connection, error) {
	subject := query.subject()

	body, err := c.transport.Fetch(ctx, c.urls.Routing(query), subject)
	if err != nil {
		return nil, err
	}

	list, err := decodeFor[fahrinfo.ConnectionList](body, subject)
	if err != nil {
		return nil, err
	}
	return list.ConnectionList, nil
}

// Interruptions returns the service interruption feed untouched. Its shape
// belongs to upstream and is not modelled here.
func (c *Client) Interruptions(ctx context.Context) (json.RawMessage, error) {
	body, err := c.transport.Fetch(ctx, c.urls.Interruptions(), "interruptions")
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		var probe any
		return nil, &Error{Kind: ErrDecode, Subject: "interruptions", Err: json.Unmarshal(body, &probe)}
	}
	return json.RawMessage(body), nil
}
