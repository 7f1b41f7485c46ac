package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nurpath/reflect-client/internal/types"
)

func TestGetUserStats_DecodesSnapshot(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user-stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "u1" {
			t.Errorf("user_id = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"weekly_progress": 2,
			"weekly_best": 4,
			"nurbits": 100,
			"current_goal": 3,
			"completed": ["s1","s2"],
			"last_goal_set": "2024-03-16T00:00:00Z",
			"goal_reached": false
		}`))
	}))
	defer srv.Close()

	stats, err := GetUserStats(context.Background(), srv.Client(), srv.URL, "u1", RetryPolicy{})
	if err != nil {
		t.Fatalf("GetUserStats error: %v", err)
	}
	if stats.WeeklyProgress != 2 || stats.Nurbits != 100 || stats.CurrentGoal != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.WeeklyBest == nil || *stats.WeeklyBest != 4 {
		t.Fatalf("weekly_best not decoded: %+v", stats.WeeklyBest)
	}
	if len(stats.Completed) != 2 {
		t.Fatalf("completed not decoded: %+v", stats.Completed)
	}
}

func TestGetUserStats_MissingWeeklyBestIsNil(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"weekly_progress":0,"nurbits":0,"current_goal":1,"completed":[]}`))
	}))
	defer srv.Close()

	stats, err := GetUserStats(context.Background(), srv.Client(), srv.URL, "u1", RetryPolicy{})
	if err != nil {
		t.Fatalf("GetUserStats error: %v", err)
	}
	if stats.WeeklyBest != nil {
		t.Fatalf("expected nil weekly_best, got %d", *stats.WeeklyBest)
	}
}

func TestGetUserStats_RetriesRecoverableFailures(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"weekly_progress":1,"nurbits":10,"current_goal":2,"completed":[]}`))
	}))
	defer srv.Close()

	rp := RetryPolicy{MaxAttempts: 3, BaseBackoff: time.Millisecond, MaxInterval: 5 * time.Millisecond}
	stats, err := GetUserStats(context.Background(), srv.Client(), srv.URL, "u1", rp)
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if stats.Nurbits != 10 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("expected 3 attempts, got %d", n)
	}
}

func TestGetUserStats_NoRetryOnIrrecoverable(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"User not found"}`))
	}))
	defer srv.Close()

	rp := RetryPolicy{MaxAttempts: 5, BaseBackoff: time.Millisecond}
	_, err := GetUserStats(context.Background(), srv.Client(), srv.URL, "u1", rp)
	if !errors.Is(err, types.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected a single attempt, got %d", n)
	}
}

func TestGetReflections_Decodes(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get-reflections" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"reflections_count":7}`))
	}))
	defer srv.Close()

	rr, err := GetReflections(context.Background(), srv.Client(), srv.URL, "u1", RetryPolicy{})
	if err != nil {
		t.Fatalf("GetReflections error: %v", err)
	}
	if rr.ReflectionsCount != 7 {
		t.Fatalf("unexpected count: %d", rr.ReflectionsCount)
	}
}

func TestStats_EmptyUserIDRejectedLocally(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty user id")
	}))
	defer srv.Close()

	if _, err := GetUserStats(context.Background(), srv.Client(), srv.URL, " ", RetryPolicy{}); !errors.Is(err, types.ErrNoUser) {
		t.Fatalf("expected ErrNoUser, got %v", err)
	}
	if _, err := GetReflections(context.Background(), srv.Client(), srv.URL, "", RetryPolicy{}); !errors.Is(err, types.ErrNoUser) {
		t.Fatalf("expected ErrNoUser, got %v", err)
	}
}
