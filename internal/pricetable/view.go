package pricetable

import "bookprice-service/internal/model"

// TableView is the full, serializable view state of one pricing table:
// search query, sort, current page, and shop selection. All state lives
// here rather than in scattered per-widget flags, so a view can be
// snapshotted, rebuilt from request parameters, and tested directly.
type TableView struct {
	Query    string
	Field    SortField
	Dir      SortDirection
	Page     int
	PageSize int
	Shops    ShopSelection
}

// NewTableView returns the default view state: no query, no explicit sort,
// first page, starter shop selection.
func NewTableView(pageSize int) TableView {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return TableView{
		Dir:      SortAsc,
		Page:     1,
		PageSize: pageSize,
		Shops:    DefaultShopSelection(),
	}
}

// Reset restores the default query, sort, and page. The shop selection is
// deliberately kept: replacing the record set should not undo the user's
// column choices.
func (v *TableView) Reset() {
	v.Query = ""
	v.Field = SortNone
	v.Dir = SortAsc
	v.Page = 1
}

// SetQuery changes the search query and returns to the first page.
func (v *TableView) SetQuery(query string) {
	v.Query = query
	v.Page = 1
}

// ClickSort applies a column-header click and returns to the first page.
func (v *TableView) ClickSort(clicked SortField) {
	v.Field, v.Dir = NextSort(v.Field, v.Dir, clicked)
	v.Page = 1
}

// SetPage jumps directly to a page. Clamping happens against the filtered
// length at Apply time.
func (v *TableView) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.Page = page
}

// NextPage advances one page, never past the last.
func (v *TableView) NextPage(totalPages int) {
	v.Page = ClampPage(v.Page+1, totalPages)
}

// PrevPage goes back one page, never below the first.
func (v *TableView) PrevPage() {
	if v.Page > 1 {
		v.Page--
	}
}

// ToggleShop flips one shop column. Shop changes do not reset the page.
func (v *TableView) ToggleShop(shop model.Shop) {
	v.Shops.Toggle(shop)
}

// Row is one rendered table row: the record plus the derived per-shop
// lowest prices and the adjusted margin.
type Row struct {
	Record         model.PriceRecord
	Offers         map[model.Shop]LowestPrice
	AdjustedMargin float64
}

// TableResult is the outcome of applying a view to a record set.
type TableResult struct {
	Rows       []Row
	Page       int
	TotalPages int
	TotalItems int
	Window     []int
}

// Apply runs the full derivation pipeline over records: filter by query,
// sort, slice the current page, then resolve the selected shops' lowest
// prices and the adjusted margin per row. The input is never mutated.
func (v *TableView) Apply(records []model.PriceRecord) TableResult {
	filtered := Filter(records, v.Query)
	ordered := Sort(filtered, v.Field, v.Dir)
	page := Paginate(ordered, v.Page, v.PageSize)

	rows := make([]Row, 0, len(page.Items))
	for i := range page.Items {
		r := page.Items[i]
		offers := make(map[model.Shop]LowestPrice, len(v.Shops.Selected))
		for _, shop := range v.Shops.Selected {
			offers[shop] = Lowest(&r, shop)
		}
		rows = append(rows, Row{
			Record:         r,
			Offers:         offers,
			AdjustedMargin: Margin(&r, v.Shops.Adjust),
		})
	}

	return TableResult{
		Rows:       rows,
		Page:       page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		Window:     Window(page.Number, page.TotalPages),
	}
}
