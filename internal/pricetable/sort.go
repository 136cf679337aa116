package pricetable

import (
	"fmt"
	"sort"

	"bookprice-service/internal/model"
)

// SortField selects which numeric column orders the table.
type SortField string

const (
	SortNone      SortField = ""
	SortListPrice SortField = "list_price"
	SortCost      SortField = "cost"
	SortSalePrice SortField = "sale_price"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortField validates a sort field from user input. The empty string
// means no explicit sort.
func ParseSortField(raw string) (SortField, error) {
	switch f := SortField(raw); f {
	case SortNone, SortListPrice, SortCost, SortSalePrice:
		return f, nil
	default:
		return SortNone, fmt.Errorf("unknown sort field: %q", raw)
	}
}

// ParseSortDirection validates a direction, defaulting to ascending.
func ParseSortDirection(raw string) (SortDirection, error) {
	switch d := SortDirection(raw); d {
	case SortAsc, SortDesc:
		return d, nil
	case "":
		return SortAsc, nil
	default:
		return SortAsc, fmt.Errorf("unknown sort direction: %q", raw)
	}
}

func sortValue(r *model.PriceRecord, field SortField) model.Number {
	switch field {
	case SortListPrice:
		return r.ListPrice
	case SortCost:
		return r.Cost
	case SortSalePrice:
		return r.SalePrice
	default:
		return model.Number{}
	}
}

// Sort returns a new ordering of records by the chosen field. Records with
// a missing or unparseable value on the field always sink to the tail, in
// both directions, keeping their relative input order. SortNone returns
// the input unchanged.
func Sort(records []model.PriceRecord, field SortField, dir SortDirection) []model.PriceRecord {
	if field == SortNone {
		return records
	}

	defined := make([]model.PriceRecord, 0, len(records))
	missing := make([]model.PriceRecord, 0)
	for _, r := range records {
		if sortValue(&r, field).Defined() {
			defined = append(defined, r)
		} else {
			missing = append(missing, r)
		}
	}

	sort.SliceStable(defined, func(i, j int) bool {
		a := sortValue(&defined[i], field).Float64
		b := sortValue(&defined[j], field).Float64
		if dir == SortDesc {
			return a > b
		}
		return a < b
	})

	return append(defined, missing...)
}

// NextSort implements the column-header click protocol: clicking the
// active field flips its direction, clicking a new field selects it
// ascending.
func NextSort(field SortField, dir SortDirection, clicked SortField) (SortField, SortDirection) {
	if clicked == field {
		if dir == SortAsc {
			return field, SortDesc
		}
		return field, SortAsc
	}
	return clicked, SortAsc
}
