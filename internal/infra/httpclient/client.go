// Package httpclient builds the HTTP client shared by every outbound integration.
package httpclient

import (
	"context"
	"log/slog"
	"net/http"

	"authproxy/config"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/fx"
)

// Params defines the parameters required for the outbound client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type retryKey struct{}

// New returns a standard *http.Client that bounds each attempt with the outbound timeout.
// Connection errors and 5xx responses are retried for GET, HEAD, OPTIONS, PUT and DELETE.
// Other methods are sent once unless the client is wrapped with AllowRetries.
func New(params Params) *http.Client {
	cfg := params.Config.Outbound

	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = cfg.Timeout
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = cfg.RetryWaitMin
	client.RetryWaitMax = cfg.RetryWaitMax
	client.CheckRetry = retryPolicy
	// Hand the last response back so callers can read the provider's status and body.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if params.Logger != nil {
		client.Logger = params.Logger.With(slog.String("component", "outbound"))
	} else {
		client.Logger = nil
	}

	standard := client.StandardClient()
	standard.Transport = &methodTransport{next: standard.Transport}

	return standard
}

// AllowRetries returns a copy of client that retries every request it sends,
// whatever the method. Use it only for calls that are safe to repeat.
func AllowRetries(client *http.Client) *http.Client {
	next := client.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	clone := *client
	clone.Transport = &markTransport{next: next, retry: true}

	return &clone
}

// methodTransport marks idempotent methods as retryable unless a caller already decided.
type methodTransport struct {
	next http.RoundTripper
}

func (t *methodTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if _, ok := req.Context().Value(retryKey{}).(bool); !ok {
		req = req.WithContext(context.WithValue(req.Context(), retryKey{}, idempotent(req.Method)))
	}

	return t.next.RoundTrip(req)
}

type markTransport struct {
	next  http.RoundTripper
	retry bool
}

func (t *markTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.next.RoundTrip(req.WithContext(context.WithValue(req.Context(), retryKey{}, t.retry)))
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// retryPolicy never retries a request that was not marked retryable, nor a response below 500.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if retry, _ := ctx.Value(retryKey{}).(bool); !retry {
		return false, nil
	}

	if err == nil && resp != nil && resp.StatusCode < http.StatusInternalServerError {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}
