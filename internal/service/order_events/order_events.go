package order_events

import (
	"context"
	"time"

	"tireshop/internal/entities"
	"tireshop/internal/pkg/metrics"
	"tireshop/pkg/logger"
)

// Service учитывает события заказов, прочитанные воркером.
type Service struct {
	log serviceLogger
	now func() time.Time
}

func New(log serviceLogger) *Service {
	return &Service{
		log: log,
		now: time.Now,
	}
}

func (s *Service) Record(ctx context.Context, event entities.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	metrics.OrderEventsConsumed.WithLabelValues(event.Type.String(), event.Status.String()).Inc()

	fields := []logger.Field{
		logger.NewField("type", event.Type.String()),
		logger.NewField("order_id", event.OrderID),
		logger.NewField("status", event.Status.String()),
	}
	if !event.OccurredAt.IsZero() {
		fields = append(fields, logger.NewField("lag", s.now().Sub(event.OccurredAt).String()))
	}
	if event.Type == entities.OrderEventCreated {
		fields = append(fields,
			logger.NewField("tire_id", event.TireID),
			logger.NewField("quantity", event.Quantity),
			logger.NewField("installation_option", event.InstallationOption.String()),
		)
	}

	s.log.Info("order event recorded", fields...)
	return nil
}
