package autoassign

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersAssignedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_orders_assigned_total",
			Help: "Total number of orders assigned by the auto-assignment engine",
		},
		[]string{"pass"}, // region | balance
	)

	OrdersSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_orders_skipped_total",
			Help: "Total number of orders skipped because the assignment was protected",
		},
	)

	OrdersFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_orders_failed_total",
			Help: "Total number of orders that failed to upsert during auto-assignment",
		},
	)
)
