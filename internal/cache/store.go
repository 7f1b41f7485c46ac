// Package cache is the engine-owned persistent key-value store. The engine is
// the sole writer to the keys declared here; no other component may touch them.
package cache

import "context"

// Keys owned by the reflection engine. Values are strings; numeric fields are
// stored in decimal form and completed summaries as a JSON array.
const (
	KeyWeeklyProgress     = "weekly_progress"
	KeyNurbitCount        = "nurbit_count"
	KeyCurrentGoal        = "current_goal"
	KeyWeeklyBest         = "weekly_best"
	KeyCompletedSummaries = "completed_summaries"
	KeyLastGoalSet        = "last_goal_set"
)

// Keys returns all engine-owned keys, for snapshot reads.
func Keys() []string {
	return []string{
		KeyWeeklyProgress,
		KeyNurbitCount,
		KeyCurrentGoal,
		KeyWeeklyBest,
		KeyCompletedSummaries,
		KeyLastGoalSet,
	}
}

// Store is the persistent key-value cache contract. SetMany must be atomic:
// a concurrent reader observes either none or all of the batch, never a mix.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, kvs map[string]string) error
	Clear(ctx context.Context) error
	Close() error
}
