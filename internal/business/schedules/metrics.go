package schedules

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	toggleCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liferabbit_schedule_toggles_total",
			Help: "Total number of occurrence completion changes",
		},
		[]string{"state"},
	)

	rejectedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "liferabbit_schedule_forms_rejected_total",
			Help: "Total number of schedule forms rejected by validation",
		},
	)
)
