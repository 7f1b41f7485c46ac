package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nurpath/reflect-client/internal/types"
)

// GetUserStats retrieves the authoritative profile snapshot.
func GetUserStats(ctx context.Context, httpClient *http.Client, baseURL, userID string, rp RetryPolicy) (*types.UserStatsResponse, error) {
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/user-stats?user_id=%s", baseURL, url.QueryEscape(userID))
	var sr types.UserStatsResponse
	if err := getJSON(ctx, httpClient, u, "get user stats", rp, &sr); err != nil {
		return nil, err
	}
	return &sr, nil
}

// GetReflections retrieves the lifetime reflection count.
func GetReflections(ctx context.Context, httpClient *http.Client, baseURL, userID string, rp RetryPolicy) (*types.ReflectionsResponse, error) {
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/get-reflections?user_id=%s", baseURL, url.QueryEscape(userID))
	var rr types.ReflectionsResponse
	if err := getJSON(ctx, httpClient, u, "get reflections", rp, &rr); err != nil {
		return nil, err
	}
	return &rr, nil
}
