package entities

// Promotion позиция статического промо-листа.
type Promotion struct {
	Code    string
	Name    string
	RimSize int
	Price   int
}

// PromotionOffer промо-позиция, сопоставленная с каталогом, с рассчитанными ценами.
type PromotionOffer struct {
	Promotion

	Series      string
	Size        string
	MatchedTire *Tire

	BasePrice       int
	InstallationFee int
	ShippingFee     int
	InstalledPrice  int
	ShippedPrice    int
	OrderLink       string
}

type InstallationFee struct {
	MinRim int
	MaxRim int
	Fee    int
}

type FeeSchedule struct {
	InstallationFees   []InstallationFee
	ShippingFeePerTire int
}
