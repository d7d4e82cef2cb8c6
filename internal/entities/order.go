package entities

import "time"

type Order struct {
	ID                 int64
	TireID             int64
	Quantity           int
	CustomerName       string
	Phone              string
	Email              *string
	InstallationOption InstallationOption
	DeliveryAddress    *string
	CarModel           string
	Notes              *string
	Status             OrderStatusType
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Tire снимок позиции каталога на момент чтения, нужен для списка заказов в админке.
	Tire Tire
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "PENDING"
	OrderConfirmed OrderStatusType = "CONFIRMED"
	OrderCompleted OrderStatusType = "COMPLETED"
	OrderCancelled OrderStatusType = "CANCELLED"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderStatuses все статусы в порядке жизненного цикла.
func OrderStatuses() []OrderStatusType {
	return []OrderStatusType{OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled}
}

type InstallationOption string

const (
	InstallationInstall  InstallationOption = "INSTALL"
	InstallationPickup   InstallationOption = "PICKUP"
	InstallationDelivery InstallationOption = "DELIVERY"
)

func (o InstallationOption) String() string {
	return string(o)
}

func (o InstallationOption) IsValid() bool {
	switch o {
	case InstallationInstall, InstallationPickup, InstallationDelivery:
		return true
	default:
		return false
	}
}

// OrderCreate данные формы заказа с витрины. Все поля опциональны на входе, обязательность проверяет сервис.
type OrderCreate struct {
	TireID             *int64
	Quantity           *int
	CustomerName       *string
	Phone              *string
	Email              *string
	InstallationOption *InstallationOption
	DeliveryAddress    *string
	CarModel           *string
	Notes              *string
}

type OrderFilter struct {
	Status  *OrderStatusType
	Keyword *string
}
