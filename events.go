package client

// Events receives engine notifications. Implementations must be fast and
// non-blocking; SessionChanged may be invoked from the countdown goroutine.
type Events interface {
	// RewardGranted fires exactly once per successful submission whose
	// nurbit total strictly exceeds the previous one.
	RewardGranted(total, gained int)
	// SessionChanged fires on every session state transition and on each
	// countdown tick.
	SessionChanged(s Session)
}

// NopEvents discards all notifications.
type NopEvents struct{}

func (NopEvents) RewardGranted(total, gained int) {}
func (NopEvents) SessionChanged(s Session)        {}
