package torn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/osse101/TornBot_Go/internal/logger"
	"github.com/osse101/TornBot_Go/internal/metrics"
)

// Client talks to the Torn API. It is safe for concurrent use and shares one
// HTTP connection pool and one rate limiter across all callers.
type Client struct {
	baseURL    string
	v2BaseURL  string
	http       *http.Client
	limiter    *rate.Limiter
	retryBase  time.Duration
	maxRetries uint64
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRateLimit caps requests per minute across all keys. Zero or less disables limiting.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), DefaultBurst)
	}
}

// WithRetry sets the first backoff delay and the number of retries after the first attempt
func WithRetry(base time.Duration, maxRetries uint64) Option {
	return func(c *Client) {
		c.retryBase = base
		c.maxRetries = maxRetries
	}
}

// NewClient creates a client. baseURL serves v1 selections, v2BaseURL serves v2 paths.
func NewClient(baseURL, v2BaseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		v2BaseURL:  v2BaseURL,
		http:       &http.Client{Timeout: DefaultTimeout},
		retryBase:  DefaultRetryBase,
		maxRetries: DefaultMaxRetries,
	}
	WithRateLimit(DefaultPerMinute)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs a GET against a v2 path and decodes the JSON body into out.
func (c *Client) Fetch(ctx context.Context, path, apiKey string, params url.Values, out any) error {
	return c.get(ctx, c.v2BaseURL, path, apiKey, params, out)
}

// FetchV1 performs a GET against a v1 path and decodes the JSON body into out.
func (c *Client) FetchV1(ctx context.Context, path, apiKey string, params url.Values, out any) error {
	return c.get(ctx, c.baseURL, path, apiKey, params, out)
}

func (c *Client) get(ctx context.Context, base, path, apiKey string, params url.Values, out any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = append([]string(nil), v...)
	}
	q.Set("key", apiKey)
	endpoint := base + path + "?" + q.Encode()

	log := logger.FromContext(ctx)
	var body []byte
	attempt := 0

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			metrics.UpstreamRetriesTotal.Inc()
			log.Debug(LogMsgRetrying, "path", path, "attempt", attempt)
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		b, err := c.once(ctx, endpoint)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Warn(LogMsgUpstreamFailed, "path", path, "attempts", attempt, "error", err)
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(outcomeDecode).Inc()
		return &UpstreamError{Message: fmt.Sprintf("%s: %v", ErrMsgInvalidJSON, err)}
	}
	return nil
}

// once performs a single attempt. Retryable failures are wrapped with retry.RetryableError.
func (c *Client) once(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Message: ErrMsgBuildRequest}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(outcomeTransport).Inc()
		return nil, retry.RetryableError(&UpstreamError{
			Message: fmt.Sprintf("%s: %v", ErrMsgRequestFailed, redact(err)),
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(outcomeTransport).Inc()
		return nil, retry.RetryableError(&UpstreamError{
			Message:    fmt.Sprintf("%s: %v", ErrMsgReadBody, redact(err)),
			StatusCode: resp.StatusCode,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(outcomeHTTP).Inc()
		ue := &UpstreamError{
			Message:    ErrMsgUnexpectedStatus + " " + strconv.Itoa(resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, retry.RetryableError(ue)
		}
		return nil, ue
	}

	if apiErr := decodeErrorEnvelope(body); apiErr != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(outcomeAPI).Inc()
		apiErr.StatusCode = resp.StatusCode
		return nil, retry.RetryableError(apiErr)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(outcomeSuccess).Inc()
	return body, nil
}

// decodeErrorEnvelope returns the application error carried by {"error":{...}}, if any.
func decodeErrorEnvelope(body []byte) *UpstreamError {
	var env struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil || len(env.Error) == 0 {
		return nil
	}
	var e struct {
		Code  Int64  `json:"code"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(env.Error, &e); err != nil {
		return nil
	}
	msg := e.Error
	if msg == "" {
		msg = ErrMsgUnknownAPIError
	}
	return &UpstreamError{Code: int(e.Code.Value), Message: msg}
}

// redact strips the request URL, which carries the API key, from transport errors.
func redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
