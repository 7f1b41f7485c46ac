package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nurpath/reflect-client/internal/types"
)

// GetKhutbahs retrieves the user's archived khutbahs. The engine derives the
// archive size (and with it the goal ceiling) from the returned list.
func GetKhutbahs(ctx context.Context, httpClient *http.Client, baseURL, userID string, rp RetryPolicy) ([]types.Khutbah, error) {
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/get-khutbahs?user_id=%s", baseURL, url.QueryEscape(userID))
	var kr types.KhutbahsResponse
	if err := getJSON(ctx, httpClient, u, "get khutbahs", rp, &kr); err != nil {
		return nil, err
	}
	return kr.Khutbahs, nil
}

// SearchKhutbahs runs a free-text search over the user's archive.
func SearchKhutbahs(ctx context.Context, httpClient *http.Client, baseURL, userID, query string, rp RetryPolicy) ([]types.Khutbah, error) {
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/search-khutbahs?user_id=%s&query=%s",
		baseURL, url.QueryEscape(userID), url.QueryEscape(query))
	var kr types.KhutbahsResponse
	if err := getJSON(ctx, httpClient, u, "search khutbahs", rp, &kr); err != nil {
		return nil, err
	}
	return kr.Khutbahs, nil
}

// ToggleFavorite flips the favorite flag on a khutbah and returns the new value.
func ToggleFavorite(ctx context.Context, httpClient *http.Client, baseURL, userID, khutbahID string) (bool, error) {
	if err := types.ValidateUserID(userID); err != nil {
		return false, err
	}
	req := types.FavoriteRequest{UserID: userID, KhutbahID: khutbahID}
	var fr types.FavoriteResponse
	u := fmt.Sprintf("%s/khutbah/favorite", baseURL)
	if err := postJSON(ctx, httpClient, u, "toggle favorite", req, &fr, nil); err != nil {
		return false, err
	}
	return fr.IsFavorite, nil
}
