package pricetable

import "bookprice-service/internal/model"

// ShopSelection tracks which shop columns the table renders plus the
// single shop used for margin adjustment. The two are independent: the
// adjustment shop does not have to be among the selected columns.
type ShopSelection struct {
	Selected []model.Shop
	Adjust   model.Shop
}

// DefaultShopSelection returns the starter column subset and adjustment
// shop.
func DefaultShopSelection() ShopSelection {
	selected := make([]model.Shop, len(model.DefaultShops))
	copy(selected, model.DefaultShops)
	return ShopSelection{Selected: selected, Adjust: model.DefaultAdjustShop}
}

// Has reports whether a shop column is selected.
func (s *ShopSelection) Has(shop model.Shop) bool {
	for _, sel := range s.Selected {
		if sel == shop {
			return true
		}
	}
	return false
}

// Toggle adds or removes one shop column. The selection is kept in the
// canonical column order regardless of toggle order.
func (s *ShopSelection) Toggle(shop model.Shop) {
	if !shop.Known() {
		return
	}

	want := make(map[model.Shop]bool, len(s.Selected)+1)
	for _, sel := range s.Selected {
		want[sel] = true
	}
	want[shop] = !want[shop]

	s.Selected = s.Selected[:0]
	for _, candidate := range model.AllShops {
		if want[candidate] {
			s.Selected = append(s.Selected, candidate)
		}
	}
}

// SelectAll selects every known shop column.
func (s *ShopSelection) SelectAll() {
	s.Selected = make([]model.Shop, len(model.AllShops))
	copy(s.Selected, model.AllShops)
}

// Clear removes every shop column.
func (s *ShopSelection) Clear() {
	s.Selected = nil
}

// SetAdjust changes the margin-adjustment shop. Unknown shops are ignored.
func (s *ShopSelection) SetAdjust(shop model.Shop) {
	if shop.Known() {
		s.Adjust = shop
	}
}
