// Package replicate implements a minimal client for the Replicate
// predictions HTTP API: job submission, status polling, and typed
// error classification.
package replicate

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for prediction operations.
var (
	// ErrMissingToken indicates no API token was configured.
	ErrMissingToken = errors.New("replicate: REPLICATE_API_TOKEN environment variable is not set")

	// ErrPredictionFailed indicates the service reported a terminal
	// failed or canceled status for the prediction.
	ErrPredictionFailed = errors.New("replicate: prediction failed")

	// ErrMalformedResponse indicates the service returned a response
	// the client could not interpret. Not retryable.
	ErrMalformedResponse = errors.New("replicate: malformed API response")
)

// APIError is an HTTP-level error from the predictions API. It carries
// the status code so callers can classify failures structurally
// instead of sniffing error strings.
type APIError struct {
	// StatusCode is the HTTP status returned by the API.
	StatusCode int

	// Detail is the error detail from the response body, if any.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("replicate: API error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("replicate: API error %d", e.StatusCode)
}

// IsRateLimited reports whether err is an API error with status 429.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}

// IsRetryable reports whether err is worth retrying: rate limits,
// server-side errors, and transport failures. Malformed responses and
// terminal prediction failures are not retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMalformedResponse) || errors.Is(err, ErrPredictionFailed) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	// Transport errors (timeouts, connection resets) come through as
	// plain wrapped errors; treat them as transient.
	return true
}
