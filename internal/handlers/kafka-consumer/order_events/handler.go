package order_events

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tireshop/internal/pkg/kafka"
	"tireshop/internal/pkg/metrics"
	"tireshop/pkg/logger"
)

type Handler struct {
	eventService             Service
	log                      logger.Logger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventService Service, timeout time.Duration) *Handler {
	return &Handler{
		eventService:             eventService,
		log:                      log.With(logger.NewField("handler", "order_events")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order events: claim closed, exiting ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := kafka.DecodeOrderEvent(message.Value)
	if err != nil {
		metrics.OrderEventsRejected.Inc()
		h.log.Error("order events: bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
			logger.NewField("partition", message.Partition),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("type", event.Type.String()),
		logger.NewField("offset", message.Offset),
	)

	err = h.eventService.Record(ctx, event)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.Warn("order events: context cancelled, message will be reprocessed",
				logger.NewField("error", err),
			)
			return true
		}

		msgLog.Warn("order events: failed to record event", logger.NewField("error", err))
	}

	sess.MarkMessage(message, "")
	return false
}
