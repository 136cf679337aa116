package model

import "fmt"

// Shop identifies one of the external retail sources that contribute
// observed prices for a record.
type Shop string

const (
	ShopEslite    Shop = "eslite"
	ShopShopee    Shop = "shopee"
	ShopMomo      Shop = "momo"
	ShopPchome    Shop = "pchome"
	ShopRakuten   Shop = "rakuten"
	ShopBooks     Shop = "books"
	ShopGoldstone Shop = "goldstone"
	ShopStar      Shop = "star"
	ShopSanmin    Shop = "sanmin"
	ShopTien      Shop = "tien"
	ShopIread     Shop = "iread"
)

// AllShops lists every known shop in display column order.
var AllShops = []Shop{
	ShopEslite,
	ShopShopee,
	ShopMomo,
	ShopPchome,
	ShopRakuten,
	ShopBooks,
	ShopGoldstone,
	ShopStar,
	ShopSanmin,
	ShopTien,
	ShopIread,
}

// DefaultShops is the starter subset of shop columns shown before the user
// adjusts the selection.
var DefaultShops = []Shop{
	ShopEslite,
	ShopShopee,
	ShopMomo,
	ShopPchome,
	ShopBooks,
}

// DefaultAdjustShop is the shop used for margin adjustment until the user
// picks another one.
const DefaultAdjustShop = ShopMomo

var shopLabels = map[Shop]string{
	ShopEslite:    "誠品",
	ShopShopee:    "蝦皮",
	ShopMomo:      "momo購物網",
	ShopPchome:    "PChome",
	ShopRakuten:   "樂天市場",
	ShopBooks:     "博客來",
	ShopGoldstone: "金石堂",
	ShopStar:      "星巨",
	ShopSanmin:    "三民書局",
	ShopTien:      "天瓏",
	ShopIread:     "iRead",
}

// Known reports whether s is one of the enumerated shops.
func (s Shop) Known() bool {
	_, ok := shopLabels[s]
	return ok
}

// Label returns the user-facing name of the shop.
func (s Shop) Label() string {
	if label, ok := shopLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseShop validates a shop identifier from user input.
func ParseShop(raw string) (Shop, error) {
	s := Shop(raw)
	if !s.Known() {
		return "", fmt.Errorf("unknown shop: %q", raw)
	}
	return s, nil
}
