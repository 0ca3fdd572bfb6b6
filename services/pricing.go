package services

import (
	"math"

	"github.com/Naitik2408/pizza-sub001/entity"
)

// Price resolution is pure: no state, no error paths. A lookup that finds no
// matching size falls back to the flat/base price; the second return value
// reports whether a size entry actually matched so callers and tests can
// observe the miss.

func ResolveItemPrice(item *entity.CatalogItem, size string) (int64, bool) {
	if size != "" {
		for _, v := range item.Variations {
			if v.Size == size {
				return v.Price, true
			}
		}
	}
	return item.BasePrice, false
}

func ResolveAddOnPrice(a *entity.AddOn, size string) (int64, bool) {
	if size != "" {
		for _, sp := range a.SizePrices {
			if sp.Size == size {
				return sp.Price, true
			}
		}
	}
	return a.Price, false
}

// ReresolveAddOns recomputes selected add-on prices for a new size. Only
// add-ons carrying a per-size table change; the rest keep their snapshot.
func ReresolveAddOns(selected []SelectedAddOn, size string) []SelectedAddOn {
	out := make([]SelectedAddOn, len(selected))
	copy(out, selected)
	for i := range out {
		if len(out[i].PriceBySize) == 0 {
			continue
		}
		if p, ok := out[i].PriceBySize[size]; ok {
			out[i].Price = p
		}
	}
	return out
}

// percentOf rounds half-up to a whole minor unit.
func percentOf(amount int64, pct float64) int64 {
	return int64(math.Floor(float64(amount)*pct/100 + 0.5))
}
