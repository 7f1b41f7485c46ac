package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nurpath/reflect-client/internal/types"
)

// SetIntention records the user's weekly reflections goal. Local validation
// (positive value, ceiling, setting window) happens in the engine before any
// network round-trip; the backend enforces the same rules authoritatively.
func SetIntention(ctx context.Context, httpClient *http.Client, baseURL, userID string, goal int) (*types.MessageResponse, error) {
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	req := types.SetIntentionRequest{UserID: userID, Goal: goal}
	var mr types.MessageResponse
	u := fmt.Sprintf("%s/set-intention", baseURL)
	if err := postJSON(ctx, httpClient, u, "set intention", req, &mr, nil); err != nil {
		return nil, err
	}
	return &mr, nil
}
