//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tire_get_test
package tire_get

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
	GetTire(ctx context.Context, id int64) (*entities.Tire, error)
}
