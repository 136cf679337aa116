package export

import "bookprice-service/internal/model"

// CanonicalColumns is the curated field order for exported sheets. Columns
// present in the data that appear here come first, in this order; any
// other columns follow in the order they were first seen.
var CanonicalColumns = []string{
	"書名",
	"ISBN",
	"供應商",
	"出版社",
	"PM",
	"定價",
	"成本",
	"售價",
	"進貨折扣",
	"銷售折扣",
	"市場最低價",
	"原始毛利率",
	"建檔日期",
}

// Columns merges the attribute keys of the selected records into the
// export column order: the union of every record's short-text and
// long-text keys, canonical columns first.
func Columns(selected []model.PriceRecord) []string {
	seen := make(map[string]bool)
	var discovered []string
	collect := func(m *model.OrderedMap) {
		for _, key := range m.Keys() {
			if !seen[key] {
				seen[key] = true
				discovered = append(discovered, key)
			}
		}
	}
	for i := range selected {
		collect(&selected[i].ShortText)
		collect(&selected[i].LongText)
	}

	canonical := make(map[string]bool, len(CanonicalColumns))
	out := make([]string, 0, len(discovered))
	for _, key := range CanonicalColumns {
		if seen[key] {
			canonical[key] = true
			out = append(out, key)
		}
	}
	for _, key := range discovered {
		if !canonical[key] {
			out = append(out, key)
		}
	}
	return out
}

// BuildRows shapes the selected records into export rows over the merged
// column set. A record missing a column serializes it as the empty string,
// so every row has a cell for every column.
func BuildRows(selected []model.PriceRecord) []model.OrderedMap {
	columns := Columns(selected)

	rows := make([]model.OrderedMap, 0, len(selected))
	for i := range selected {
		r := &selected[i]
		var row model.OrderedMap
		for _, col := range columns {
			value, ok := r.ShortText.Get(col)
			if !ok {
				value, _ = r.LongText.Get(col)
			}
			row.Set(col, value)
		}
		rows = append(rows, row)
	}
	return rows
}
