//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_tire_put_test
package admin_tire_put

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
	UpdateTire(ctx context.Context, id int64, tireModify entities.TireModify) (*entities.Tire, error)
}
