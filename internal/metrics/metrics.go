package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Completions = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "flexboard_completions_total", Help: "Total task completions"},
	)
	Uncompletions = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "flexboard_uncompletions_total", Help: "Total task uncompletions"},
	)
	PointsAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "flexboard_points_awarded_total", Help: "Total points awarded through completions"},
	)
	BadgesAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "flexboard_badges_awarded_total", Help: "Total badges awarded"},
	)
)

func Register() {
	prometheus.MustRegister(Completions, Uncompletions, PointsAwarded, BadgesAwarded)
}
