package order

import (
	"tireshop/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                 o.ID,
		TireID:             o.TireID,
		Quantity:           o.Quantity,
		CustomerName:       o.CustomerName,
		Phone:              o.Phone,
		Email:              o.Email,
		InstallationOption: entities.InstallationOption(o.InstallationOption),
		DeliveryAddress:    o.DeliveryAddress,
		CarModel:           o.CarModel,
		Notes:              o.Notes,
		Status:             entities.OrderStatusType(o.Status),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		Tire: entities.Tire{
			ID:        o.Tire.ID,
			Brand:     o.Tire.Brand,
			Series:    o.Tire.Series,
			Origin:    o.Tire.Origin,
			Size:      o.Tire.Size,
			Price:     o.Tire.Price,
			IsActive:  o.Tire.IsActive,
			CreatedAt: o.Tire.CreatedAt,
			UpdatedAt: o.Tire.UpdatedAt,
		},
	}
}

func FromDomain(order *entities.Order) *OrderDB {
	if order == nil {
		return nil
	}

	return &OrderDB{
		ID:                 order.ID,
		TireID:             order.TireID,
		Quantity:           order.Quantity,
		CustomerName:       order.CustomerName,
		Phone:              order.Phone,
		Email:              order.Email,
		InstallationOption: order.InstallationOption.String(),
		DeliveryAddress:    order.DeliveryAddress,
		CarModel:           order.CarModel,
		Notes:              order.Notes,
		Status:             order.Status.String(),
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func ToStatusCounts(countsDB []StatusCountDB) map[entities.OrderStatusType]int64 {
	result := make(map[entities.OrderStatusType]int64, len(countsDB))
	for _, c := range countsDB {
		result[entities.OrderStatusType(c.Status)] = c.Count
	}
	return result
}
