//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tires_get_test
package tires_get

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
	GetActiveTires(ctx context.Context) ([]entities.Tire, error)
	GetAllTires(ctx context.Context) ([]entities.Tire, error)
}
