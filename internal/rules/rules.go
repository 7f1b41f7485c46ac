// Package rules holds the weekly-goal policy: the archive-size tiered goal
// ceiling and the once-a-week setting window.
package rules

import "time"

// SettingDay is the only weekday on which the weekly goal may change.
const SettingDay = time.Saturday

// MaxAllowedGoal returns the goal ceiling for an archive of khutbahCount
// sermons. The more sermons archived, the higher the allowed ceiling.
func MaxAllowedGoal(khutbahCount int) int {
	switch {
	case khutbahCount <= 4:
		return 2
	case khutbahCount <= 6:
		return 3
	case khutbahCount <= 10:
		return 4
	case khutbahCount <= 15:
		return 5
	default:
		return 6
	}
}

// InSettingWindow reports whether t falls on the permitted goal-setting day.
func InSettingWindow(t time.Time) bool {
	return t.Weekday() == SettingDay
}
