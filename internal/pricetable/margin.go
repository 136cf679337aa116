package pricetable

import "bookprice-service/internal/model"

// LowestPrice is the cheapest valid observed price at one shop, with the
// link it was observed at. Listed is false when the shop has no positive
// numeric price for the record.
type LowestPrice struct {
	Price  float64
	URL    string
	Listed bool
}

// Lowest scans a shop's observed prices, keeps only positive numeric
// entries, and returns the minimum. Ties resolve to the first entry in
// sequence order.
func Lowest(r *model.PriceRecord, shop model.Shop) LowestPrice {
	var best LowestPrice
	for _, entry := range r.PricesFor(shop) {
		if !entry.Price.Positive() {
			continue
		}
		if !best.Listed || entry.Price.Float64 < best.Price {
			best = LowestPrice{Price: entry.Price.Float64, URL: entry.URL, Listed: true}
		}
	}
	return best
}

// Margin computes the adjusted profitability percentage against a shop:
// ((lowest shop price - cost) / sale price) * 100.
//
// Missing inputs never surface as NaN: an unlisted shop, a zero or missing
// cost, or a zero or missing sale price all yield 0.
func Margin(r *model.PriceRecord, shop model.Shop) float64 {
	low := Lowest(r, shop)
	if !low.Listed {
		return 0
	}
	if !r.Cost.Defined() || r.Cost.Float64 == 0 {
		return 0
	}
	if !r.SalePrice.Defined() || r.SalePrice.Float64 == 0 {
		return 0
	}
	return (low.Price - r.Cost.Float64) / r.SalePrice.Float64 * 100
}
