package tire

import (
	"tireshop/internal/entities"
	"tireshop/internal/pkg/validation"
)

const (
	maxBrandLen  = 100
	maxSeriesLen = 100
	maxOriginLen = 50
	maxSizeLen   = 50
)

// validateTire проверяет полную запись шины и возвращает её нормализованную копию.
func validateTire(tireModify entities.TireModify) (entities.TireModify, error) {
	c := validation.NewCollector()

	brand := c.RequiredString("brand", tireModify.Brand, maxBrandLen)
	series := c.RequiredString("series", tireModify.Series, maxSeriesLen)
	origin := c.OptionalString("origin", tireModify.Origin, maxOriginLen)
	size := c.RequiredString("size", tireModify.Size, maxSizeLen)

	if tireModify.Price != nil && *tireModify.Price < 0 {
		c.Add("price", validation.MinMsg(0))
	}
	if tireModify.IsActive == nil {
		c.Add("isActive", validation.MsgNotNull)
	}

	if err := c.Err(); err != nil {
		return entities.TireModify{}, err
	}

	return entities.TireModify{
		ID:       tireModify.ID,
		Brand:    &brand,
		Series:   &series,
		Origin:   origin,
		Size:     &size,
		Price:    tireModify.Price,
		IsActive: tireModify.IsActive,
	}, nil
}

func normalizeFilter(filter entities.TireFilter) entities.TireFilter {
	return entities.TireFilter{
		Brand:  validation.Normalize(filter.Brand),
		Series: validation.Normalize(filter.Series),
		Size:   validation.Normalize(filter.Size),
		Active: filter.Active,
	}
}

func isValidID(id int64) bool {
	return id > 0
}
