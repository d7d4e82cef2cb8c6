package order

import (
	"net/mail"
	"strings"

	"tireshop/internal/entities"
	"tireshop/internal/pkg/validation"
)

const (
	maxCustomerNameLen    = 100
	maxPhoneLen           = 50
	maxEmailLen           = 255
	maxDeliveryAddressLen = 500
	maxCarModelLen        = 100
	maxNotesLen           = 1000

	// ConfirmationMessage показывается покупателю после оформления заказа.
	ConfirmationMessage = "訂單已送出，客服將與您聯繫確認。"
)

// validateCreate проверяет форму заказа и собирает нормализованный заказ в статусе PENDING.
func validateCreate(orderCreate entities.OrderCreate) (entities.Order, error) {
	c := validation.NewCollector()

	if orderCreate.TireID == nil {
		c.Add("tireId", validation.MsgNotNull)
	}
	if orderCreate.Quantity == nil {
		c.Add("quantity", validation.MsgNotNull)
	} else if *orderCreate.Quantity < 1 {
		c.Add("quantity", validation.MinMsg(1))
	}

	customerName := c.RequiredString("customerName", orderCreate.CustomerName, maxCustomerNameLen)
	phone := c.RequiredString("phone", orderCreate.Phone, maxPhoneLen)
	carModel := c.RequiredString("carModel", orderCreate.CarModel, maxCarModelLen)

	email := c.OptionalString("email", orderCreate.Email, maxEmailLen)
	if email != nil && !c.Has("email") && !isValidEmail(*email) {
		c.Add("email", validation.MsgEmail)
	}

	var option entities.InstallationOption
	switch {
	case orderCreate.InstallationOption == nil:
		c.Add("installationOption", validation.MsgNotNull)
	case !orderCreate.InstallationOption.IsValid():
		c.Add("installationOption", validation.MsgInvalid)
	default:
		option = *orderCreate.InstallationOption
	}

	deliveryAddress := c.OptionalString("deliveryAddress", orderCreate.DeliveryAddress, maxDeliveryAddressLen)
	if option == entities.InstallationDelivery && deliveryAddress == nil {
		c.Add("deliveryAddress", "is required for delivery")
	}
	if option != entities.InstallationDelivery {
		deliveryAddress = nil
	}

	notes := c.OptionalString("notes", orderCreate.Notes, maxNotesLen)

	if err := c.Err(); err != nil {
		return entities.Order{}, err
	}

	return entities.Order{
		TireID:             *orderCreate.TireID,
		Quantity:           *orderCreate.Quantity,
		CustomerName:       customerName,
		Phone:              phone,
		Email:              email,
		InstallationOption: option,
		DeliveryAddress:    deliveryAddress,
		CarModel:           carModel,
		Notes:              notes,
		Status:             entities.DefaultOrderStatus,
	}, nil
}

// isValidEmail принимает только голый адрес вида local@domain, без отображаемого имени.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Count(email, "@") == 1
}

func normalizeFilter(filter entities.OrderFilter) (entities.OrderFilter, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return entities.OrderFilter{}, ErrInvalidStatus
	}

	var keyword *string
	if filter.Keyword != nil {
		trimmed := strings.TrimSpace(*filter.Keyword)
		if trimmed != "" {
			keyword = &trimmed
		}
	}

	return entities.OrderFilter{
		Status:  filter.Status,
		Keyword: keyword,
	}, nil
}

func isValidID(id int64) bool {
	return id > 0
}
