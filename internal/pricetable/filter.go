package pricetable

import (
	"strings"

	"bookprice-service/internal/model"
)

// Filter returns the records whose title or product id contains the
// case-folded query as a substring. A blank (empty or whitespace-only)
// query returns the input unchanged, in the same order.
func Filter(records []model.PriceRecord, query string) []model.PriceRecord {
	if strings.TrimSpace(query) == "" {
		return records
	}

	q := strings.ToLower(query)
	out := make([]model.PriceRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.ProductID), q) {
			out = append(out, r)
		}
	}
	return out
}
