package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"tireshop/internal/entities"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	OrdersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tire_orders_by_status",
			Help: "Number of tire orders in each status",
		},
		[]string{"status"},
	)

	OrderEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tire_order_events_published_total",
			Help: "Order events handed to the broker",
		},
		[]string{"type", "result"},
	)

	OrderEventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tire_order_events_total",
			Help: "Order events consumed by the worker",
		},
		[]string{"type", "status"},
	)

	OrderEventsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tire_order_events_rejected_total",
			Help: "Order event messages that could not be decoded",
		},
	)

	ConsumerGroupErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tire_order_events_consumer_errors_total",
			Help: "Errors reported by the order events consumer group",
		},
	)
)

func SetOrdersByStatus(counts map[entities.OrderStatusType]int64) {
	for status, count := range counts {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(count))
	}
}
