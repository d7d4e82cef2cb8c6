package entities

import "time"

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

func (t OrderEventType) String() string {
	return string(t)
}

func (t OrderEventType) IsValid() bool {
	return t == OrderEventCreated || t == OrderEventStatusChanged
}

// OrderEvent публикуется в kafka после создания заказа и смены статуса.
type OrderEvent struct {
	Type               OrderEventType
	OrderID            int64
	TireID             int64
	Quantity           int
	InstallationOption InstallationOption
	Status             OrderStatusType
	OccurredAt         time.Time
}

func NewOrderEvent(eventType OrderEventType, order *Order, occurredAt time.Time) OrderEvent {
	return OrderEvent{
		Type:               eventType,
		OrderID:            order.ID,
		TireID:             order.TireID,
		Quantity:           order.Quantity,
		InstallationOption: order.InstallationOption,
		Status:             order.Status,
		OccurredAt:         occurredAt,
	}
}
