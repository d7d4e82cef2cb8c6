package tire

import "time"

type TireDB struct {
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

type TireModifyDB struct {
	ID       *int64
	Brand    *string
	Series   *string
	Origin   *string
	Size     *string
	Price    *int
	IsActive *bool
}
