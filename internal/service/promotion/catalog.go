package promotion

import "tireshop/internal/entities"

// promotions текущий промо-лист магазина, обновлён 2025/05/10.
var promotions = []entities.Promotion{
	{Code: "PSR17005", Name: "普利司通 225/60 R18 ALENZA H/L 33 100V 日本", Price: 3850, RimSize: 18},
	{Code: "PSRFB03", Name: "普利司通 225/60 R18 ALENZA LX100 100H 台灣", Price: 3810, RimSize: 18},
	{Code: "PSRF829", Name: "普利司通 225/60 R18 HL422+ 100H 台灣", Price: 3530, RimSize: 18},
	{Code: "PSR0FA48", Name: "普利司通 235/60 R18 ALENZA 001 107W 台灣", Price: 3760, RimSize: 18},
	{Code: "PSRFB02", Name: "普利司通 235/60 R18 ALENZA LX100 103H 台灣", Price: 3810, RimSize: 18},
	{Code: "PSRF914", Name: "普利司通 235/60 R18 D33 103H 台灣", Price: 3430, RimSize: 18},
	{Code: "PSR0FA40", Name: "普利司通 215/55 R17 T005A 094W 台灣", Price: 3540, RimSize: 17},
	{Code: "PSR0FA76", Name: "普利司通 215/55 R17 TURANZA 6 094W 台灣", Price: 3400, RimSize: 17},
	{Code: "PSR0F830", Name: "普利司通 215/55 R17 EP150 098V 台灣", Price: 3170, RimSize: 17},
	{Code: "PSR0F781", Name: "普利司通 215/55 R17 ER33 094V 台灣", Price: 3010, RimSize: 17},
	{Code: "PSR0FA26", Name: "普利司通 215/60 R17 ALENZA 001 096H 台灣", Price: 3090, RimSize: 17},
	{Code: "PSR0NJB6", Name: "普利司通 215/60 R17 TURANZA 6 100H 印尼", Price: 3410, RimSize: 17},
}

var feeSchedule = entities.FeeSchedule{
	InstallationFees: []entities.InstallationFee{
		{MinRim: 14, MaxRim: 16, Fee: 300},
		{MinRim: 17, MaxRim: 18, Fee: 400},
		{MinRim: 19, MaxRim: 20, Fee: 500},
	},
	ShippingFeePerTire: 100,
}

// Promotions возвращает копию промо-листа.
func Promotions() []entities.Promotion {
	result := make([]entities.Promotion, len(promotions))
	copy(result, promotions)
	return result
}

func Fees() entities.FeeSchedule {
	fees := make([]entities.InstallationFee, len(feeSchedule.InstallationFees))
	copy(fees, feeSchedule.InstallationFees)
	return entities.FeeSchedule{
		InstallationFees:   fees,
		ShippingFeePerTire: feeSchedule.ShippingFeePerTire,
	}
}

func installationFee(rimSize int) int {
	for _, f := range feeSchedule.InstallationFees {
		if rimSize >= f.MinRim && rimSize <= f.MaxRim {
			return f.Fee
		}
	}
	return 0
}
