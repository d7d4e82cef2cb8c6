package entities

import (
	"time"
)

// Tire позиция каталога. Price == nil означает "цена по запросу" (на витрине "價格另洽").
type Tire struct {
	ID        int64
	Brand     string
	Series    string
	Origin    *string
	Size      string
	Price     *int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TireModify struct {
	ID       *int64
	Brand    *string
	Series   *string
	Origin   *string
	Size     *string
	Price    *int
	IsActive *bool
}

// TireFilter фильтр поиска в админке. Строковые поля ищутся по вхождению без учёта регистра.
type TireFilter struct {
	Brand  *string
	Series *string
	Size   *string
	Active *bool
}
