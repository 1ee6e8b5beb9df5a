package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cheikhn414/currency-converter/model"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	userAgent = "CurrencyConverter/1.0"

	// maxBodyBytes bounds how much of a response body is read,
	// both for decoding and for error reporting
	maxBodyBytes = 1 << 20
)

// Response is the payload shape shared by both upstream APIs.
type Response struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	Timestamp int64                      `json:"timestamp"`
}

// Client fetches rate sets from one templated provider endpoint.
// The base currency code is appended to the endpoint as-is, which
// covers both `.../latest/` and `...?base=` style templates.
type Client struct {
	name        string        // provider name for logs and errors
	endpoint    string        // URL template the base code is appended to
	httpClient  *http.Client  // HTTP client used to communicate with the API
	rateLimiter *rate.Limiter // limiter for outbound calls
}

func New(name, endpoint string, timeout time.Duration) (*Client, error) {
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid endpoint for provider %s: %w", name, err)
	}

	return &Client{
		name:        name,
		endpoint:    endpoint,
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

// Name implements service.Provider.
func (c *Client) Name() string { return c.name }

// Fetch implements service.Provider.
// One GET per invocation; retry and fallback belong to the caller.
func (c *Client) Fetch(ctx context.Context, base string) (model.RateSet, error) {
	base = strings.ToUpper(base)

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return model.RateSet{}, &model.ProviderError{Provider: c.name, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+base, nil)
	if err != nil {
		return model.RateSet{}, &model.ProviderError{Provider: c.name, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	log.Debug().Str("provider", c.name).Str("url", req.URL.String()).Msg("fetching rates from API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.RateSet{}, &model.ProviderError{Provider: c.name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return model.RateSet{}, &model.ProviderError{Provider: c.name, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return model.RateSet{}, &model.ProviderError{
			Provider:   c.name,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	payload := Response{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.RateSet{}, &model.ProviderError{Provider: c.name, Err: err}
	}

	if len(payload.Rates) == 0 {
		return model.RateSet{}, &model.ProviderError{
			Provider: c.name,
			Err:      fmt.Errorf("no rates in response for base %s", base),
		}
	}

	// some APIs omit the base field; fall back to the queried base
	if payload.Base == "" {
		payload.Base = base
	}

	return model.RateSet{
		Base:      strings.ToUpper(payload.Base),
		Rates:     payload.Rates,
		FetchedAt: time.Now(),
		Live:      true,
	}, nil
}
