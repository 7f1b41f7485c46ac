package apierrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/nurpath/reflect-client/internal/types"
)

func TestClassify_Taxonomy(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		status   int
		body     string
		sentinel error
		category Category
	}{
		{"user not found", http.StatusNotFound, `{"error":"User not found"}`, types.ErrUserNotFound, Irrecoverable},
		{"no summaries", http.StatusNotFound, `{"error":"No khutbahs with summary found"}`, types.ErrNoContent, Irrecoverable},
		{"unknown 404", http.StatusNotFound, `{"error":"gone"}`, nil, Irrecoverable},
		{"bad request", http.StatusBadRequest, `{"error":"bad"}`, nil, Irrecoverable},
		{"rate limited", http.StatusTooManyRequests, ``, nil, Recoverable},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, types.ErrServer, Recoverable},
		{"bad gateway", http.StatusBadGateway, ``, types.ErrServer, Recoverable},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Classify("op", c.status, []byte(c.body))
			if err.Category != c.category {
				t.Errorf("category = %v, want %v", err.Category, c.category)
			}
			if c.sentinel != nil && !errors.Is(err, c.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, c.sentinel)
			}
			if err.StatusCode != c.status {
				t.Errorf("status = %d, want %d", err.StatusCode, c.status)
			}
		})
	}
}

func TestNetwork_IsRecoverableAndMapsSentinel(t *testing.T) {
	t.Parallel()
	err := Network("get stats", errors.New("connection refused"))
	if !IsRecoverable(err) {
		t.Error("network errors must be recoverable")
	}
	if !errors.Is(err, types.ErrNetworkUnavailable) {
		t.Error("network errors must map to ErrNetworkUnavailable")
	}
}

func TestClassify_MalformedBodyKeptVerbatim(t *testing.T) {
	t.Parallel()
	err := Classify("op", http.StatusInternalServerError, []byte("<html>oops</html>"))
	if err.Body != "<html>oops</html>" {
		t.Errorf("body not preserved: %q", err.Body)
	}
}
