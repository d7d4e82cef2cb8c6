//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_tires_get_test
package admin_tires_get

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
	SearchTires(ctx context.Context, filter entities.TireFilter) ([]entities.Tire, error)
}
