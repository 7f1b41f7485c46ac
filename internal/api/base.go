package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/nurpath/reflect-client/internal/apierrors"
)

// maxErrorBody caps how much of an error reply is kept for diagnostics.
const maxErrorBody = 4096

// RetryPolicy bounds backoff retries of idempotent GETs.
// Zero values fall back to defaults.
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxInterval time.Duration
}

func (rp RetryPolicy) withDefaults() RetryPolicy {
	if rp.MaxAttempts <= 0 {
		rp.MaxAttempts = 3
	}
	if rp.BaseBackoff <= 0 {
		rp.BaseBackoff = 100 * time.Millisecond
	}
	if rp.MaxInterval <= 0 {
		rp.MaxInterval = 5 * time.Second
	}
	return rp
}

// getJSON issues a GET and decodes the 200 reply into out. Recoverable
// failures are retried with exponential backoff; irrecoverable ones fail
// immediately.
func getJSON(ctx context.Context, httpClient *http.Client, url, operation string, rp RetryPolicy, out any) error {
	rp = rp.withDefaults()

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = rp.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = rp.MaxInterval
	exp.Reset()

	var lastErr error
	for attempt := 0; attempt < rp.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(exp.NextBackOff()):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		lastErr = getJSONOnce(ctx, httpClient, url, operation, out)
		if lastErr == nil || !apierrors.IsRecoverable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func getJSONOnce(ctx context.Context, httpClient *http.Client, url, operation string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apierrors.Network(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return apierrors.Classify(operation, resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// postJSON issues a POST with a JSON body and decodes the 200 reply into out.
// POSTs are never retried here; the engine surfaces failures to the caller.
func postJSON(ctx context.Context, httpClient *http.Client, url, operation string, in, out any, headers map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apierrors.Network(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return apierrors.Classify(operation, resp.StatusCode, respBody)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
