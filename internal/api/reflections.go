package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nurpath/reflect-client/internal/types"
)

// StartReflection asks the backend for a reflection prompt. The reply is
// either a placeholder (not enough content for a real reflection) or a
// summary plus countdown duration.
func StartReflection(ctx context.Context, httpClient *http.Client, baseURL, userID string) (*types.ReflectResponse, error) {
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	req := types.ReflectRequest{UserID: userID}
	var rr types.ReflectResponse
	u := fmt.Sprintf("%s/reflect", baseURL)
	if err := postJSON(ctx, httpClient, u, "start reflection", req, &rr, nil); err != nil {
		return nil, err
	}
	return &rr, nil
}

// SaveReflection submits a completed reflection. idempotencyKey guards
// against double-crediting when a failed submission is retried; the backend
// may ignore it.
func SaveReflection(ctx context.Context, httpClient *http.Client, baseURL string, req types.SaveReflectionRequest, idempotencyKey string) (*types.SaveReflectionResponse, error) {
	if err := types.ValidateUserID(req.UserID); err != nil {
		return nil, err
	}
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}
	var sr types.SaveReflectionResponse
	u := fmt.Sprintf("%s/save-reflection", baseURL)
	if err := postJSON(ctx, httpClient, u, "save reflection", req, &sr, headers); err != nil {
		return nil, err
	}
	return &sr, nil
}
