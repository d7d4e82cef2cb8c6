package promotion

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"tireshop/internal/entities"
)

var (
	// бренд, размер, серия, индекс нагрузки/скорости и страна
	promoNameRe = regexp.MustCompile(`^(\S+)\s+(\d{2,3}/\d{2}\s*R\d{2,3})\s+(.+?)\s+([\w\d]+\s*\S+)$`)
	promoSizeRe = regexp.MustCompile(`(\d{2,3}/\d{2}\s*R\d{2,3})`)

	nonAlphanumericRe = regexp.MustCompile(`(?i)[^a-z0-9]`)
	nonSizeRe         = regexp.MustCompile(`(?i)[^0-9R]`)
)

// parsePromoName достаёт серию и размер из названия промо-позиции.
func parsePromoName(name string) (series, size string) {
	if m := promoNameRe.FindStringSubmatch(name); m != nil {
		return m[3], m[2]
	}

	if m := promoSizeRe.FindStringSubmatch(name); m != nil {
		size = m[1]
	}

	parts := strings.Split(name, " ")
	if len(parts) > 3 {
		series = strings.Join(parts[2:len(parts)-2], " ")
	}

	return series, size
}

func normalizeSeries(value string) string {
	return strings.ToUpper(nonAlphanumericRe.ReplaceAllString(value, ""))
}

func normalizeSize(value string) string {
	return strings.ToUpper(nonSizeRe.ReplaceAllString(value, ""))
}

func isSeriesMatch(catalogSeries, promoSeries string) bool {
	left := normalizeSeries(catalogSeries)
	right := normalizeSeries(promoSeries)
	if left == "" || right == "" {
		return false
	}
	return strings.Contains(left, right) || strings.Contains(right, left)
}

func isSizeMatch(catalogSize, promoSize string) bool {
	return normalizeSize(catalogSize) == normalizeSize(promoSize)
}

// findTire возвращает первую шину каталога с тем же размером и совместимой серией.
func findTire(catalog []entities.Tire, series, size string) *entities.Tire {
	for i := range catalog {
		if isSizeMatch(catalog[i].Size, size) && isSeriesMatch(catalog[i].Series, series) {
			return &catalog[i]
		}
	}
	return nil
}

// widthOf возвращает ширину профиля из названия: "普利司通 225/60 R18 ..." -> "225".
func widthOf(name string) (string, bool) {
	parts := strings.Split(name, " ")
	if len(parts) < 2 {
		return "", false
	}

	width := strings.SplitN(parts[1], "/", 2)[0]
	if _, err := strconv.Atoi(width); err != nil {
		return "", false
	}
	return width, true
}

func orderLink(matched *entities.Tire, series, size string) string {
	params := url.Values{}
	if matched != nil {
		params.Set("tireId", strconv.FormatInt(matched.ID, 10))
	} else {
		if series != "" {
			params.Set("series", series)
		}
		if size != "" {
			params.Set("size", size)
		}
	}

	if len(params) == 0 {
		return "/order"
	}
	return "/order?" + params.Encode()
}

func buildOffer(promo entities.Promotion, catalog []entities.Tire, shippingFee int) entities.PromotionOffer {
	series, size := parsePromoName(promo.Name)
	matched := findTire(catalog, series, size)

	basePrice := promo.Price
	if matched != nil && matched.Price != nil {
		basePrice = *matched.Price
	}
	installFee := installationFee(promo.RimSize)

	return entities.PromotionOffer{
		Promotion:       promo,
		Series:          series,
		Size:            size,
		MatchedTire:     matched,
		BasePrice:       basePrice,
		InstallationFee: installFee,
		ShippingFee:     shippingFee,
		InstalledPrice:  basePrice + installFee,
		ShippedPrice:    basePrice + shippingFee,
		OrderLink:       orderLink(matched, series, size),
	}
}
