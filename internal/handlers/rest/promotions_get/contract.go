//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=promotions_get_test
package promotions_get

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
	ListOffers(ctx context.Context, width string) ([]entities.PromotionOffer, error)
}
