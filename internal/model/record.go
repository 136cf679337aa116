package model

// PriceRecord represents one product/price listing as delivered by the
// market-data feed. Records are replaced wholesale on refresh and never
// mutated by the view layer.
type PriceRecord struct {
	ProductID     string `json:"productId"`
	Title         string `json:"title"`
	SupplierName  string `json:"supplierName"`
	PublisherName string `json:"publisherName"`
	PMName        string `json:"pmName"`

	ListPrice           Number `json:"listPrice"`
	Cost                Number `json:"cost"`
	SalePrice           Number `json:"salePrice"`
	PurchaseDiscountPct Number `json:"purchaseDiscountPct"`
	SaleDiscountPct     Number `json:"saleDiscountPct"`
	MarketMinPrice      Number `json:"marketMinPrice"`
	OriginalMarginPct   Number `json:"originalMarginPct"`

	// Observed prices per shop. An absent or empty list means the shop
	// does not list the product.
	EslitePrices    []ShopPrice `json:"eslite_prices,omitempty"`
	ShopeePrices    []ShopPrice `json:"shopee_prices,omitempty"`
	MomoPrices      []ShopPrice `json:"momo_prices,omitempty"`
	PchomePrices    []ShopPrice `json:"pchome_prices,omitempty"`
	RakutenPrices   []ShopPrice `json:"rakuten_prices,omitempty"`
	BooksPrices     []ShopPrice `json:"books_prices,omitempty"`
	GoldstonePrices []ShopPrice `json:"goldstone_prices,omitempty"`
	StarPrices      []ShopPrice `json:"star_prices,omitempty"`
	SanminPrices    []ShopPrice `json:"sanmin_prices,omitempty"`
	TienPrices      []ShopPrice `json:"tien_prices,omitempty"`
	IreadPrices     []ShopPrice `json:"iread_prices,omitempty"`

	// Free-form attribute maps used by the spreadsheet export. Key order
	// follows the feed.
	ShortText OrderedMap `json:"short_text,omitempty"`
	LongText  OrderedMap `json:"long_text,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// ShopPrice is one observed price/link pair at a shop.
type ShopPrice struct {
	Price Number `json:"price"`
	URL   string `json:"url"`
}

// PricesFor returns the observed price list for a shop.
func (r *PriceRecord) PricesFor(shop Shop) []ShopPrice {
	switch shop {
	case ShopEslite:
		return r.EslitePrices
	case ShopShopee:
		return r.ShopeePrices
	case ShopMomo:
		return r.MomoPrices
	case ShopPchome:
		return r.PchomePrices
	case ShopRakuten:
		return r.RakutenPrices
	case ShopBooks:
		return r.BooksPrices
	case ShopGoldstone:
		return r.GoldstonePrices
	case ShopStar:
		return r.StarPrices
	case ShopSanmin:
		return r.SanminPrices
	case ShopTien:
		return r.TienPrices
	case ShopIread:
		return r.IreadPrices
	default:
		return nil
	}
}
