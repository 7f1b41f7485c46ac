package rules

import (
	"testing"
	"time"
)

func TestMaxAllowedGoal_Tiers(t *testing.T) {
	t.Parallel()
	cases := []struct {
		khutbahs int
		want     int
	}{
		{0, 2},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
		{7, 4},
		{10, 4},
		{11, 5},
		{15, 5},
		{16, 6},
		{100, 6},
	}
	for _, c := range cases {
		if got := MaxAllowedGoal(c.khutbahs); got != c.want {
			t.Errorf("MaxAllowedGoal(%d) = %d, want %d", c.khutbahs, got, c.want)
		}
	}
}

func TestInSettingWindow(t *testing.T) {
	t.Parallel()
	saturday := time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC)
	if saturday.Weekday() != time.Saturday {
		t.Fatalf("fixture is not a Saturday: %v", saturday.Weekday())
	}
	if !InSettingWindow(saturday) {
		t.Error("expected Saturday to be inside the setting window")
	}
	for d := 1; d <= 6; d++ {
		day := saturday.AddDate(0, 0, d)
		if InSettingWindow(day) {
			t.Errorf("expected %v to be outside the setting window", day.Weekday())
		}
	}
}
