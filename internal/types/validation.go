package types

import (
	"errors"
	"strings"
)

// Sentinel errors shared across the SDK. The root client package re-exports
// these so consumers compare against a single symbol with errors.Is.
var (
	// ErrInvalidGoal is returned for a non-positive weekly goal.
	ErrInvalidGoal = errors.New("goal must be a positive integer")
	// ErrGoalExceedsMaximum is returned when the goal is above the
	// archive-size ceiling.
	ErrGoalExceedsMaximum = errors.New("goal exceeds the allowed maximum")
	// ErrOutsideSettingWindow is returned when the goal is changed outside
	// the permitted day of the week.
	ErrOutsideSettingWindow = errors.New("weekly goal can only be set on the permitted day")
	// ErrUserNotFound maps the backend's "User not found" reply.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoContent covers both an empty local archive and the backend's
	// "No khutbahs with summary found" reply.
	ErrNoContent = errors.New("no khutbah summaries available")
	// ErrNetworkUnavailable is returned when no response was received at all.
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrServer covers 5xx-class backend failures.
	ErrServer = errors.New("server error")
	// ErrOperationInProgress is returned when a mutating call overlaps an
	// outstanding one; overlapping calls are rejected, never queued.
	ErrOperationInProgress = errors.New("operation already in progress")
	// ErrIncompleteResponse is returned when /reflect omits the summary or
	// the timer; the session does not transition.
	ErrIncompleteResponse = errors.New("incomplete reflection data received")
	// ErrNoPendingReflection is returned by MarkAsRead when no session is
	// awaiting acknowledgement (including placeholder prompts).
	ErrNoPendingReflection = errors.New("no reflection awaiting acknowledgement")
	// ErrNoUser is returned when an operation needs a user id and none is set.
	ErrNoUser = errors.New("no user id configured")
)

// ValidateUserID rejects empty or whitespace-only user ids before any
// network round-trip.
func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrNoUser
	}
	return nil
}
