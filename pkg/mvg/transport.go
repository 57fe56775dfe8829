package mvg

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

const DefaultUserAgent = "mvg-go/1.0 (+https://github.com/travigo/mvg)"

// Transport performs single GET requests over one shared connection pool.
type Transport struct {
	httpClient *http.Client
	userAgent  string
}

func NewTransport(httpClient *http.Client, userAgent string) *Transport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Transport{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// Fetch returns the full body of a 200 response. subject is attached to any
// error so callers can tell what was being looked up.
func (t *Transport) Fetch(ctx context.Context, rawURL string, subject string) ([]byte, error) {
	target, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidRequestTarget, Subject: subject, Err: err}
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, &Error{Kind: ErrInvalidRequestTarget, Subject: subject, Err: &url.Error{Op: "parse", URL: rawURL, Err: errMissingHost}}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidRequestTarget, Subject: subject, Err: err}
	}
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Subject: subject, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &Error{Kind: ErrUnexpectedStatus, Subject: subject, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Subject: subject, Err: err}
	}

	return body, nil
}
