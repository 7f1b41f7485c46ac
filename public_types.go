package client

import "github.com/nurpath/reflect-client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Profile      = types.Profile
	Session      = types.Session
	SessionState = types.SessionState
	Khutbah      = types.Khutbah

	// Requests
	SaveReflectionRequest = types.SaveReflectionRequest
	LoginRequest          = types.LoginRequest
	SignupRequest         = types.SignupRequest
	ChangePasswordRequest = types.ChangePasswordRequest

	// Responses
	UserStatsResponse      = types.UserStatsResponse
	ReflectionsResponse    = types.ReflectionsResponse
	ReflectResponse        = types.ReflectResponse
	SaveReflectionResponse = types.SaveReflectionResponse
	MessageResponse        = types.MessageResponse
	LoginResponse          = types.LoginResponse
	SignupResponse         = types.SignupResponse
)

// Session states re-exported for consumers.
const (
	SessionIdle        = types.SessionIdle
	SessionPlaceholder = types.SessionPlaceholder
	SessionCounting    = types.SessionCounting
	SessionAwaitingAck = types.SessionAwaitingAck
)

// Errors re-exported in errors.go
