package pricetable

import "bookprice-service/internal/model"

// rec builds a minimal record for table tests.
func rec(id, title string) model.PriceRecord {
	return model.PriceRecord{ProductID: id, Title: title}
}

// priced builds a record with the three sortable price fields set.
func priced(id string, list, cost, sale float64) model.PriceRecord {
	return model.PriceRecord{
		ProductID: id,
		Title:     id,
		ListPrice: model.Num(list),
		Cost:      model.Num(cost),
		SalePrice: model.Num(sale),
	}
}

func ids(records []model.PriceRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ProductID)
	}
	return out
}
