package order

import "time"

type OrderDB struct {
	ID                 int64
	TireID             int64
	Quantity           int
	CustomerName       string
	Phone              string
	Email              *string
	InstallationOption string
	DeliveryAddress    *string
	CarModel           string
	Notes              *string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Tire TireDB
}

// TireDB снимок шины из JOIN, колонки с префиксом t.
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

type StatusCountDB struct {
	Status string
	Count  int64
}
