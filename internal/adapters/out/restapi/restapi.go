// Package restapi holds what the REST gateway clients share: the resty client
// setup and the mapping of transport results onto gateway errors.
package restapi

import (
	"fmt"
	"net/http"
	"time"

	"orderdesk/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds a gateway call when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// NewHTTPClient creates a JSON client for baseURL. Retries are disabled; a
// failed call is reported to the user, who decides whether to try again.
func NewHTTPClient(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
}

// CheckResponse turns a transport error or a non-2xx status into
// ports.ErrGatewayFailure. A 404 is returned as notFound when it is non-nil.
func CheckResponse(resp *resty.Response, err error, notFound error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrGatewayFailure, err)
	}

	if resp.StatusCode() == http.StatusNotFound && notFound != nil {
		return notFound
	}

	if resp.IsError() {
		return fmt.Errorf("%w: %s %s responded %s",
			ports.ErrGatewayFailure, resp.Request.Method, resp.Request.URL, resp.Status())
	}

	return nil
}
