package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"github.com/tdex-network/mvs-vault/pkg/circuitbreaker"
	"go.uber.org/ratelimit"
)

const (
	// DefaultURL is the base url of the ETP bridge api.
	DefaultURL = "https://bridge.mvs.org/api"
	// DefaultRequestsPerSecond ...
	DefaultRequestsPerSecond = 5
	// DefaultTimeout ...
	DefaultTimeout = 15 * time.Second
)

var (
	// ErrBadResponse is returned for any non-2xx response.
	ErrBadResponse = errors.New("bad response from bridge")
	// ErrNullSymbol ...
	ErrNullSymbol = errors.New("symbol must not be null")
	// ErrNullAddress ...
	ErrNullAddress = errors.New("address must not be null")
	// ErrNullOrderID ...
	ErrNullOrderID = errors.New("order id must not be null")
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInvalidURL ...
	ErrInvalidURL = errors.New("invalid bridge url")
)

// Opts is the struct given to NewClient. Zero values are replaced by the
// package defaults.
type Opts struct {
	URL               string
	RequestsPerSecond int
	Timeout           time.Duration
}

func (o Opts) validate() error {
	u, err := url.Parse(o.URL)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	return nil
}

// Client is a stateless JSON client for the ETP bridge. Requests are paced by
// a rate limiter and go through a circuit breaker that fails fast once the
// bridge looks unavailable. Requests are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	limiter    ratelimit.Limiter
}

// NewClient returns a new bridge Client.
func NewClient(opts Opts) (*Client, error) {
	if len(opts.URL) <= 0 {
		opts.URL = DefaultURL
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    strings.TrimSuffix(opts.URL, "/"),
		httpClient: &http.Client{Timeout: opts.Timeout},
		cb:         circuitbreaker.NewCircuitBreaker("bridge"),
		limiter:    ratelimit.New(opts.RequestsPerSecond),
	}, nil
}

// GetRate returns the current rate for swapping depositSymbol for
// receiveSymbol.
func (c *Client) GetRate(
	ctx context.Context, depositSymbol, receiveSymbol string,
) (*Rate, error) {
	if len(depositSymbol) <= 0 || len(receiveSymbol) <= 0 {
		return nil, ErrNullSymbol
	}

	path := fmt.Sprintf(
		"/rate/%s/%s",
		url.PathEscape(depositSymbol), url.PathEscape(receiveSymbol),
	)
	rate := &Rate{}
	if err := c.do(ctx, http.MethodGet, path, nil, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// GetPairs returns all the supported swap pairs.
func (c *Client) GetPairs(ctx context.Context) (Pairs, error) {
	pairs := Pairs{}
	if err := c.do(ctx, http.MethodGet, "/pairs", nil, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// GetOrder returns the details of the order with the given id.
func (c *Client) GetOrder(ctx context.Context, id string) (*OrderDetails, error) {
	if len(id) <= 0 {
		return nil, ErrNullOrderID
	}

	order := &OrderDetails{}
	path := fmt.Sprintf("/order/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, nil, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CreateOrder submits a new swap order to the bridge.
func (c *Client) CreateOrder(
	ctx context.Context, params CreateOrderParameters,
) (*OrderDetails, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	order := &OrderDetails{}
	if err := c.do(ctx, http.MethodPost, "/order", params, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (c *Client) do(
	ctx context.Context, method, path string, body, out interface{},
) error {
	c.limiter.Take()

	_, err := c.cb.Execute(func() (interface{}, error) {
		var reqBody io.Reader
		if body != nil {
			buf, err := json.Marshal(body)
			if err != nil {
				return nil, err
			}
			reqBody = bytes.NewReader(buf)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf(
				"%w: %d %s", ErrBadResponse, resp.StatusCode,
				strings.TrimSpace(string(respBody)),
			)
		}

		if err := json.Unmarshal(respBody, out); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadResponse, err)
		}
		return nil, nil
	})
	return err
}
