package types

// ------------------------------
// Request Types
// ------------------------------

// ReflectRequest asks the backend for a reflection prompt.
type ReflectRequest struct {
	UserID string `json:"user_id"`
}

// SaveReflectionRequest submits a finished reflection for reward accrual.
type SaveReflectionRequest struct {
	UserID     string `json:"user_id"`
	SummaryID  string `json:"summary_id"`
	Reflection string `json:"reflection"`
}

// SetIntentionRequest sets the weekly reflections goal.
type SetIntentionRequest struct {
	UserID string `json:"user_id"`
	Goal   int    `json:"goal"`
}

// FavoriteRequest toggles the favorite flag on an archived khutbah.
type FavoriteRequest struct {
	UserID    string `json:"user_id"`
	KhutbahID string `json:"khutbah_id"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest registers a new user.
type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest rotates a user's password.
type ChangePasswordRequest struct {
	UserID      string `json:"user_id"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
