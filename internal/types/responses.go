package types

// ------------------------------
// Response Types
// ------------------------------

// KhutbahsResponse wraps the /get-khutbahs and /search-khutbahs replies.
type KhutbahsResponse struct {
	Khutbahs []Khutbah `json:"khutbahs"`
}

// UserStatsResponse is the authoritative profile snapshot from /user-stats.
// WeeklyBest is a pointer because accounts created before the weekly-best
// rollout omit the field entirely.
type UserStatsResponse struct {
	WeeklyProgress int      `json:"weekly_progress"`
	WeeklyBest     *int     `json:"weekly_best"`
	Nurbits        int      `json:"nurbits"`
	CurrentGoal    int      `json:"current_goal"`
	Completed      []string `json:"completed"`
	LastGoalSet    string   `json:"last_goal_set"`
	GoalReached    bool     `json:"goal_reached"`
}

// ReflectionsResponse wraps the /get-reflections reply.
type ReflectionsResponse struct {
	ReflectionsCount int `json:"reflections_count"`
}

// ReflectResponse is the /reflect reply: either a placeholder prompt (no
// reward possible) or a timed summary.
type ReflectResponse struct {
	Placeholder bool   `json:"placeholder"`
	Summary     string `json:"summary"`
	SummaryID   string `json:"summary_id"`
	Timer       int    `json:"timer"`
	GoalReached bool   `json:"goal_reached"`
}

// SaveReflectionResponse carries the reconciled counters after a submission.
type SaveReflectionResponse struct {
	WeeklyProgress  int `json:"weekly_progress"`
	Goal            int `json:"goal"`
	Nurbits         int `json:"nurbits"`
	TotalReflection int `json:"total_reflection"`
}

// FavoriteResponse is the reply to a favorite toggle.
type FavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// MessageResponse wraps endpoints that reply with a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse identifies the authenticated user.
type LoginResponse struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Plan     string `json:"plan"`
}

// SignupResponse identifies the newly registered user.
type SignupResponse struct {
	UserID string `json:"user_id"`
}

// ErrorResponse is the backend error body shape.
type ErrorResponse struct {
	Error string `json:"error"`
}
