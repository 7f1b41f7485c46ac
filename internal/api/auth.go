package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nurpath/reflect-client/internal/types"
)

// Login authenticates a user by email and password.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.LoginResponse, error) {
	var lr types.LoginResponse
	u := fmt.Sprintf("%s/login", baseURL)
	if err := postJSON(ctx, httpClient, u, "login", req, &lr, nil); err != nil {
		return nil, err
	}
	return &lr, nil
}

// Signup registers a new user.
func Signup(ctx context.Context, httpClient *http.Client, baseURL string, req types.SignupRequest) (*types.SignupResponse, error) {
	var sr types.SignupResponse
	u := fmt.Sprintf("%s/signup", baseURL)
	if err := postJSON(ctx, httpClient, u, "signup", req, &sr, nil); err != nil {
		return nil, err
	}
	return &sr, nil
}

// ChangePassword rotates a user's password.
func ChangePassword(ctx context.Context, httpClient *http.Client, baseURL string, req types.ChangePasswordRequest) (*types.MessageResponse, error) {
	if err := types.ValidateUserID(req.UserID); err != nil {
		return nil, err
	}
	var mr types.MessageResponse
	u := fmt.Sprintf("%s/change-password", baseURL)
	if err := postJSON(ctx, httpClient, u, "change password", req, &mr, nil); err != nil {
		return nil, err
	}
	return &mr, nil
}
