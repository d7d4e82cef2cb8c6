//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_metrics_test
package order_metrics

import (
	"context"

	"tireshop/internal/entities"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}
