package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nurpath/reflect-client/internal/types"
)

func TestStartReflection_TimedReply(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/reflect" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req types.ReflectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID != "u1" {
			t.Errorf("bad request body: %+v err=%v", req, err)
		}
		_, _ = w.Write([]byte(`{"summary":"On patience","summary_id":"s1","timer":20}`))
	}))
	defer srv.Close()

	resp, err := StartReflection(context.Background(), srv.Client(), srv.URL, "u1")
	if err != nil {
		t.Fatalf("StartReflection error: %v", err)
	}
	if resp.Placeholder || resp.Summary != "On patience" || resp.SummaryID != "s1" || resp.Timer != 20 {
		t.Fatalf("unexpected reply: %+v", resp)
	}
}

func TestStartReflection_PlaceholderReply(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"placeholder":true,"summary":"Add more khutbahs","summary_id":""}`))
	}))
	defer srv.Close()

	resp, err := StartReflection(context.Background(), srv.Client(), srv.URL, "u1")
	if err != nil {
		t.Fatalf("StartReflection error: %v", err)
	}
	if !resp.Placeholder || resp.Summary != "Add more khutbahs" {
		t.Fatalf("unexpected reply: %+v", resp)
	}
}

func TestStartReflection_404Classification(t *testing.T) {
	t.Parallel()
	cases := []struct {
		body     string
		sentinel error
	}{
		{`{"error":"User not found"}`, types.ErrUserNotFound},
		{`{"error":"No khutbahs with summary found"}`, types.ErrNoContent},
	}
	for _, c := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(c.body))
		}))
		_, err := StartReflection(context.Background(), srv.Client(), srv.URL, "u1")
		srv.Close()
		if !errors.Is(err, c.sentinel) {
			t.Errorf("body %s: expected %v, got %v", c.body, c.sentinel, err)
		}
	}
}

func TestSaveReflection_SendsIdempotencyKey(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/save-reflection" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Idempotency-Key") != "key-1" {
			t.Errorf("missing idempotency key, headers: %v", r.Header)
		}
		var req types.SaveReflectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SummaryID != "s1" {
			t.Errorf("bad request body: %+v err=%v", req, err)
		}
		_, _ = w.Write([]byte(`{"weekly_progress":3,"goal":3,"nurbits":110,"total_reflection":8}`))
	}))
	defer srv.Close()

	req := types.SaveReflectionRequest{UserID: "u1", SummaryID: "s1", Reflection: "text"}
	resp, err := SaveReflection(context.Background(), srv.Client(), srv.URL, req, "key-1")
	if err != nil {
		t.Fatalf("SaveReflection error: %v", err)
	}
	if resp.Nurbits != 110 || resp.WeeklyProgress != 3 || resp.TotalReflection != 8 {
		t.Fatalf("unexpected reply: %+v", resp)
	}
}

func TestSaveReflection_ServerErrorSurfaced(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"db down"}`))
	}))
	defer srv.Close()

	req := types.SaveReflectionRequest{UserID: "u1", SummaryID: "s1", Reflection: "text"}
	_, err := SaveReflection(context.Background(), srv.Client(), srv.URL, req, "")
	if !errors.Is(err, types.ErrServer) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
}

func TestSetIntention_RoundTrip(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/set-intention" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req types.SetIntentionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Goal != 3 {
			t.Errorf("bad request body: %+v err=%v", req, err)
		}
		_, _ = w.Write([]byte(`{"message":"Intention saved"}`))
	}))
	defer srv.Close()

	mr, err := SetIntention(context.Background(), srv.Client(), srv.URL, "u1", 3)
	if err != nil {
		t.Fatalf("SetIntention error: %v", err)
	}
	if mr.Message != "Intention saved" {
		t.Fatalf("unexpected message: %q", mr.Message)
	}
}
