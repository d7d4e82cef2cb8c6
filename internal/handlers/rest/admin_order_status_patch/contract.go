//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_order_status_patch_test
package admin_order_status_patch

import (
	"context"

	"tireshop/internal/entities"
	"tireshop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateOrderStatus(ctx context.Context, id int64, status *entities.OrderStatusType) (*entities.Order, error)
}
