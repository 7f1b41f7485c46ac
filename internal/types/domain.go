package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// SessionState enumerates the reflection session lifecycle.
type SessionState int

const (
	// SessionIdle means no reflection is in flight. It is both the initial
	// state and the state every cycle returns to.
	SessionIdle SessionState = iota
	// SessionPlaceholder means the backend had too little content for a real
	// reflection; the prompt is informational and carries no reward.
	SessionPlaceholder
	// SessionCounting means the countdown is running.
	SessionCounting
	// SessionAwaitingAck means the countdown reached zero and the user may
	// now claim the reward by marking the summary read.
	SessionAwaitingAck
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionPlaceholder:
		return "placeholder"
	case SessionCounting:
		return "counting"
	case SessionAwaitingAck:
		return "awaiting-ack"
	default:
		return "unknown"
	}
}

// Profile is the authoritative-as-known view of a user's reflection progress.
// Cached values fill it first; a successful stats fetch overwrites every field.
type Profile struct {
	UserID              string
	KhutbahCount        int
	ReflectionsCount    int
	NurbitCount         int
	WeeklyProgress      int
	WeeklyBest          int
	CurrentGoal         int
	LastGoalSet         string
	CompletedSummaryIDs []string
	GoalReached         bool
}

// HasCompleted reports whether summaryID was already marked read.
func (p Profile) HasCompleted(summaryID string) bool {
	for _, id := range p.CompletedSummaryIDs {
		if id == summaryID {
			return true
		}
	}
	return false
}

// Session is the transient in-flight reflection. At most one exists per engine.
type Session struct {
	State            SessionState
	SummaryID        string
	SummaryText      string
	RemainingSeconds int
	Placeholder      bool
}

// Khutbah is one archived sermon as returned by the backend.
type Khutbah struct {
	ID         string   `json:"id"`
	Summary    string   `json:"summary"`
	Transcript string   `json:"transcript"`
	Keywords   []string `json:"keywords"`
	Tips       string   `json:"tips"`
	Created    string   `json:"created"`
	IsFavorite bool     `json:"is_favorite"`
}
