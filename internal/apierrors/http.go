package apierrors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nurpath/reflect-client/internal/types"
)

// Backend error strings carried in 404 bodies. The dashboard distinguishes
// these because they drive different user remediation (upload a sermon vs.
// contact support).
const (
	msgUserNotFound = "User not found"
	msgNoSummaries  = "No khutbahs with summary found"
)

// Classify maps an HTTP failure reply to a taxonomy error.
//
//   - 404 with a known error body maps to ErrUserNotFound / ErrNoContent.
//   - Other 4xx (except 408/429) are irrecoverable.
//   - 5xx map to ErrServer and are recoverable.
func Classify(operation string, statusCode int, body []byte) *ClassifiedError {
	message := errorMessage(body)

	e := &ClassifiedError{
		StatusCode: statusCode,
		Body:       string(body),
		Underlying: fmt.Errorf("%s failed: HTTP %d: %s", operation, statusCode, message),
	}

	switch {
	case statusCode == http.StatusNotFound:
		e.Category = Irrecoverable
		switch message {
		case msgUserNotFound:
			e.Sentinel = types.ErrUserNotFound
		case msgNoSummaries:
			e.Sentinel = types.ErrNoContent
		}
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		e.Category = Recoverable
	case statusCode >= 400 && statusCode < 500:
		e.Category = Irrecoverable
	case statusCode >= 500 && statusCode < 600:
		e.Category = Recoverable
		e.Sentinel = types.ErrServer
	default:
		// Unexpected status codes - be conservative and retry.
		e.Category = Recoverable
	}
	return e
}

// Network wraps a transport-level failure. No response was received, so the
// failure is always recoverable and maps to ErrNetworkUnavailable.
func Network(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Sentinel:   types.ErrNetworkUnavailable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

// errorMessage extracts the backend's error string from a JSON body.
// Malformed bodies yield the raw text so nothing is silently dropped.
func errorMessage(body []byte) string {
	var er types.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return er.Error
	}
	return string(body)
}
