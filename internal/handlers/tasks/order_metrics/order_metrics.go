package order_metrics

import (
	"context"
	"fmt"
	"time"

	"tireshop/internal/pkg/metrics"
)

// OrderMetrics периодически обновляет gauge заказов по статусам.
type OrderMetrics struct {
	service  Service
	interval time.Duration
}

func NewOrderMetrics(service Service, interval time.Duration) *OrderMetrics {
	return &OrderMetrics{
		service:  service,
		interval: interval,
	}
}

func (o *OrderMetrics) TTL() time.Duration {
	return o.interval
}

func (o *OrderMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count orders by status: %w", err)
	}

	metrics.SetOrdersByStatus(counts)
	return nil
}

func (o *OrderMetrics) Info() string {
	return "order metrics"
}
