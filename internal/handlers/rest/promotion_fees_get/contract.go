//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=promotion_fees_get_test
package promotion_fees_get

import (
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
	Fees() entities.FeeSchedule
}
