//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_tire_active_patch_test
package admin_tire_active_patch

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
	UpdateActiveStatus(ctx context.Context, id int64, isActive *bool) (*entities.Tire, error)
}
