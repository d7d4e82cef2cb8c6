//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=promotion_test
package promotion

import (
	"context"

	"tireshop/internal/entities"
	"tireshop/pkg/logger"
)

type TireCatalog interface {
	GetActiveTires(ctx context.Context) ([]entities.Tire, error)
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
