//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"tireshop/internal/entities"
	"tireshop/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) error
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type TireService interface {
	GetTire(ctx context.Context, id int64) (*entities.Tire, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
