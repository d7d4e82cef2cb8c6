// Package presenter переводит доменные сущности в DTO ответов REST API.
package presenter

import (
	"tireshop/internal/entities"
	"tireshop/internal/generated/dto"
)

func Tire(t entities.Tire) dto.Tire {
	return dto.Tire{
		Id:       t.ID,
		Brand:    t.Brand,
		Series:   t.Series,
		Origin:   t.Origin,
		Size:     t.Size,
		Price:    t.Price,
		IsActive: t.IsActive,
	}
}

func TireList(tires []entities.Tire) dto.TireList {
	items := make([]dto.Tire, 0, len(tires))
	for _, t := range tires {
		items = append(items, Tire(t))
	}
	return dto.TireList{Items: items}
}

func AdminTire(t entities.Tire) dto.AdminTire {
	return dto.AdminTire{
		Id:        t.ID,
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

func AdminTireList(tires []entities.Tire) dto.AdminTireList {
	items := make([]dto.AdminTire, 0, len(tires))
	for _, t := range tires {
		items = append(items, AdminTire(t))
	}
	return dto.AdminTireList{Items: items}
}

func AdminOrder(o entities.Order) dto.AdminOrder {
	return dto.AdminOrder{
		Id:                 o.ID,
		TireId:             o.TireID,
		TireBrand:          o.Tire.Brand,
		TireSeries:         o.Tire.Series,
		TireOrigin:         o.Tire.Origin,
		TireSize:           o.Tire.Size,
		TirePrice:          o.Tire.Price,
		Quantity:           o.Quantity,
		CustomerName:       o.CustomerName,
		Phone:              o.Phone,
		Email:              o.Email,
		InstallationOption: dto.InstallationOption(o.InstallationOption),
		DeliveryAddress:    o.DeliveryAddress,
		CarModel:           o.CarModel,
		Notes:              o.Notes,
		Status:             dto.OrderStatus(o.Status),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func AdminOrderList(orders []entities.Order) dto.AdminOrderList {
	items := make([]dto.AdminOrder, 0, len(orders))
	for _, o := range orders {
		items = append(items, AdminOrder(o))
	}
	return dto.AdminOrderList{Items: items}
}

func Promotion(offer entities.PromotionOffer) dto.Promotion {
	result := dto.Promotion{
		Code:            offer.Code,
		Name:            offer.Name,
		RimSize:         offer.RimSize,
		PromoPrice:      offer.Price,
		Series:          offer.Series,
		Size:            offer.Size,
		Matched:         offer.MatchedTire != nil,
		BasePrice:       offer.BasePrice,
		InstallationFee: offer.InstallationFee,
		ShippingFee:     offer.ShippingFee,
		InstalledPrice:  offer.InstalledPrice,
		ShippedPrice:    offer.ShippedPrice,
		OrderLink:       offer.OrderLink,
	}
	if offer.MatchedTire != nil {
		id := offer.MatchedTire.ID
		result.MatchedTireId = &id
	}
	return result
}

func PromotionList(offers []entities.PromotionOffer) dto.PromotionList {
	items := make([]dto.Promotion, 0, len(offers))
	for _, offer := range offers {
		items = append(items, Promotion(offer))
	}
	return dto.PromotionList{Items: items}
}

func FeeSchedule(fees entities.FeeSchedule) dto.FeeSchedule {
	items := make([]dto.InstallationFee, 0, len(fees.InstallationFees))
	for _, fee := range fees.InstallationFees {
		items = append(items, dto.InstallationFee{
			MinRim: fee.MinRim,
			MaxRim: fee.MaxRim,
			Fee:    fee.Fee,
		})
	}
	return dto.FeeSchedule{
		InstallationFees:   items,
		ShippingFeePerTire: fees.ShippingFeePerTire,
	}
}

func TireModify(request dto.AdminTireRequest) entities.TireModify {
	return entities.TireModify{
		Brand:    request.Brand,
		Series:   request.Series,
		Origin:   request.Origin,
		Size:     request.Size,
		Price:    request.Price,
		IsActive: request.IsActive,
	}
}
