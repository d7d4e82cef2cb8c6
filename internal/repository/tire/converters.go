package tire

import (
	"tireshop/internal/entities"
)

func ToDomain(t *TireDB) *entities.Tire {
	if t == nil {
		return nil
	}

	return &entities.Tire{
		ID:        t.ID,
		Brand:     t.Brand,
		Series:    t.Series,
		Origin:    t.Origin,
		Size:      t.Size,
		Price:     t.Price,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromDomainModify(tireModify *entities.TireModify) *TireModifyDB {
	if tireModify == nil {
		return nil
	}

	return &TireModifyDB{
		ID:       tireModify.ID,
		Brand:    tireModify.Brand,
		Series:   tireModify.Series,
		Origin:   tireModify.Origin,
		Size:     tireModify.Size,
		Price:    tireModify.Price,
		IsActive: tireModify.IsActive,
	}
}

func ToDomainList(tiresDB []TireDB) []entities.Tire {
	if len(tiresDB) == 0 {
		return []entities.Tire{}
	}

	result := make([]entities.Tire, len(tiresDB))
	for i, tireDB := range tiresDB {
		result[i] = *ToDomain(&tireDB)
	}
	return result
}
