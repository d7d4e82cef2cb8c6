package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tireshop/internal/entities"
)

var ErrInvalidMessage = errors.New("invalid order event message")

// OrderEventMessage формат события заказа в топике.
type OrderEventMessage struct {
	Type               string    `json:"type"`
	OrderID            int64     `json:"orderId"`
	TireID             int64     `json:"tireId"`
	Quantity           int       `json:"quantity"`
	InstallationOption string    `json:"installationOption"`
	Status             string    `json:"status"`
	OccurredAt         time.Time `json:"occurredAt"`
}

func EncodeOrderEvent(event entities.OrderEvent) ([]byte, error) {
	payload, err := json.Marshal(OrderEventMessage{
		Type:               event.Type.String(),
		OrderID:            event.OrderID,
		TireID:             event.TireID,
		Quantity:           event.Quantity,
		InstallationOption: event.InstallationOption.String(),
		Status:             event.Status.String(),
		OccurredAt:         event.OccurredAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal order event: %w", err)
	}
	return payload, nil
}

func DecodeOrderEvent(payload []byte) (entities.OrderEvent, error) {
	var msg OrderEventMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return entities.OrderEvent{}, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	event := entities.OrderEvent{
		Type:               entities.OrderEventType(msg.Type),
		OrderID:            msg.OrderID,
		TireID:             msg.TireID,
		Quantity:           msg.Quantity,
		InstallationOption: entities.InstallationOption(msg.InstallationOption),
		Status:             entities.OrderStatusType(msg.Status),
		OccurredAt:         msg.OccurredAt,
	}

	if !event.Type.IsValid() {
		return entities.OrderEvent{}, fmt.Errorf("%w: unknown type %q", ErrInvalidMessage, msg.Type)
	}
	if event.OrderID <= 0 {
		return entities.OrderEvent{}, fmt.Errorf("%w: missing order id", ErrInvalidMessage)
	}
	if !event.Status.IsValid() {
		return entities.OrderEvent{}, fmt.Errorf("%w: unknown status %q", ErrInvalidMessage, msg.Status)
	}

	return event, nil
}
