package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hydrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nurpath_client",
		Name:      "hydrations_total",
		Help:      "Profile hydrations that reached the authoritative backend.",
	})

	hydrationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nurpath_client",
		Name:      "hydration_failures_total",
		Help:      "Hydrations that fell back to cached values.",
	})

	reflectionsStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nurpath_client",
		Name:      "reflections_started_total",
		Help:      "Reflection sessions that entered the counting state.",
	})

	reflectionsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nurpath_client",
		Name:      "reflections_completed_total",
		Help:      "Reflections acknowledged and accepted by the backend.",
	})

	rewardsGrantedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nurpath_client",
		Name:      "rewards_granted_total",
		Help:      "Submissions that yielded a net nurbit increase.",
	})

	submissionFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nurpath_client",
		Name:      "submission_failures_total",
		Help:      "Mark-as-read submissions rejected by the backend or network.",
	})
)
