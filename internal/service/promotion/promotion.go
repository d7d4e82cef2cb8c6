package promotion

import (
	"context"
	"strconv"
	"strings"

	"tireshop/internal/entities"
	"tireshop/pkg/logger"
)

type Service struct {
	catalog TireCatalog
	log     serviceLogger
}

func New(catalog TireCatalog, log serviceLogger) *Service {
	return &Service{
		catalog: catalog,
		log:     log,
	}
}

// ListOffers сопоставляет промо-лист с активным каталогом. width фильтрует по ширине профиля,
// пустая строка означает все позиции. Если каталог недоступен, используются статические цены.
func (s *Service) ListOffers(ctx context.Context, width string) ([]entities.PromotionOffer, error) {
	width = strings.TrimSpace(width)
	if width != "" {
		if _, err := strconv.Atoi(width); err != nil {
			return nil, ErrInvalidWidth
		}
	}

	catalog, err := s.catalog.GetActiveTires(ctx)
	if err != nil {
		s.log.Warn("tire catalog unavailable, falling back to static promotion prices",
			logger.NewField("error", err),
		)
		catalog = nil
	}

	shippingFee := feeSchedule.ShippingFeePerTire
	offers := make([]entities.PromotionOffer, 0, len(promotions))
	for _, promo := range promotions {
		if width != "" {
			if w, ok := widthOf(promo.Name); !ok || w != width {
				continue
			}
		}
		offers = append(offers, buildOffer(promo, catalog, shippingFee))
	}

	return offers, nil
}

func (s *Service) Fees() entities.FeeSchedule {
	return Fees()
}
