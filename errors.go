package client

import "github.com/nurpath/reflect-client/internal/types"

// Re-export shared SDK errors so callers compare against a single symbol
// with errors.Is. Each kind drives different user remediation (upload a
// sermon vs. contact support vs. retry), so they are never collapsed.
var (
	ErrInvalidGoal          = types.ErrInvalidGoal
	ErrGoalExceedsMaximum   = types.ErrGoalExceedsMaximum
	ErrOutsideSettingWindow = types.ErrOutsideSettingWindow
	ErrUserNotFound         = types.ErrUserNotFound
	ErrNoContent            = types.ErrNoContent
	ErrNetworkUnavailable   = types.ErrNetworkUnavailable
	ErrServer               = types.ErrServer
	ErrOperationInProgress  = types.ErrOperationInProgress
	ErrIncompleteResponse   = types.ErrIncompleteResponse
	ErrNoPendingReflection  = types.ErrNoPendingReflection
	ErrNoUser               = types.ErrNoUser
)
