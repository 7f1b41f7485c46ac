package client

import (
	"net/http"
	"testing"
	"time"
)

func TestNew_PanicsOnEmptyBaseURL(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty base URL")
		}
	}()
	_ = New("")
}

func TestNew_DefaultTimeout(t *testing.T) {
	t.Parallel()
	c := New("http://localhost:8080")
	if c.http.Timeout != 30*time.Second {
		t.Fatalf("default timeout = %v, want 30s", c.http.Timeout)
	}
}

func TestWithHTTPTimeout_RejectsNonPositive(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive timeout")
		}
	}()
	_ = New("http://localhost:8080", WithHTTPTimeout(0))
}

func TestWithHTTPClient_Replaces(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Timeout: 3 * time.Second}
	c := New("http://localhost:8080", WithHTTPClient(hc))
	if c.http != hc {
		t.Fatal("custom http client not installed")
	}
}

func TestNewFromConfig_AppliesTimeoutAndRetry(t *testing.T) {
	t.Parallel()
	cfg := Config{
		HTTPTimeout:    10 * time.Second,
		MaxGetAttempts: 5,
		BaseBackoff:    50 * time.Millisecond,
		MaxInterval:    time.Second,
	}
	c := NewFromConfig("http://localhost:8080", cfg)
	if c.http.Timeout != 10*time.Second {
		t.Fatalf("timeout = %v, want 10s", c.http.Timeout)
	}
	if c.retry.MaxAttempts != 5 || c.retry.BaseBackoff != 50*time.Millisecond {
		t.Fatalf("retry policy not applied: %+v", c.retry)
	}
}

func TestNewEngine_PanicsOnNilDependencies(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil api client")
		}
	}()
	_ = NewEngine(nil, newMemStore())
}
