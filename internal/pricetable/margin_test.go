package pricetable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"bookprice-service/internal/model"
)

func TestLowest(t *testing.T) {
	t.Run("picks the minimum positive price", func(t *testing.T) {
		r := model.PriceRecord{BooksPrices: []model.ShopPrice{
			{Price: model.Num(12), URL: "url1"},
			{Price: model.Num(7), URL: "url2"},
			{Price: model.Num(0), URL: "url3"},
			{Price: model.Num(-3), URL: "url4"},
		}}
		low := Lowest(&r, model.ShopBooks)
		assert.True(t, low.Listed)
		assert.Equal(t, 7.0, low.Price)
		assert.Equal(t, "url2", low.URL)
	})

	t.Run("first entry wins a tie", func(t *testing.T) {
		r := model.PriceRecord{MomoPrices: []model.ShopPrice{
			{Price: model.Num(99), URL: "first"},
			{Price: model.Num(99), URL: "second"},
		}}
		low := Lowest(&r, model.ShopMomo)
		assert.Equal(t, "first", low.URL)
	})

	t.Run("empty sequence is not listed", func(t *testing.T) {
		r := model.PriceRecord{}
		assert.False(t, Lowest(&r, model.ShopEslite).Listed)
	})

	t.Run("all non-positive is not listed", func(t *testing.T) {
		r := model.PriceRecord{PchomePrices: []model.ShopPrice{
			{Price: model.Num(0)},
			{Price: model.Num(-1)},
		}}
		assert.False(t, Lowest(&r, model.ShopPchome).Listed)
	})

	t.Run("non-numeric entries are skipped", func(t *testing.T) {
		r := model.PriceRecord{ShopeePrices: []model.ShopPrice{
			{Price: model.Number{Float64: math.NaN(), Valid: true}, URL: "bad"},
			{Price: model.Num(55), URL: "good"},
		}}
		low := Lowest(&r, model.ShopShopee)
		assert.True(t, low.Listed)
		assert.Equal(t, "good", low.URL)
	})
}

func TestMargin(t *testing.T) {
	listed := []model.ShopPrice{{Price: model.Num(250), URL: "x"}}

	t.Run("computes against the lowest shop price", func(t *testing.T) {
		r := model.PriceRecord{
			Cost:        model.Num(200),
			SalePrice:   model.Num(300),
			BooksPrices: listed,
		}
		assert.InDelta(t, 16.67, Margin(&r, model.ShopBooks), 0.01)
	})

	t.Run("negative margins are reported as-is", func(t *testing.T) {
		r := model.PriceRecord{
			Cost:       model.Num(300),
			SalePrice:  model.Num(300),
			MomoPrices: []model.ShopPrice{{Price: model.Num(150)}},
		}
		assert.InDelta(t, -50.0, Margin(&r, model.ShopMomo), 0.01)
	})

	t.Run("zero guard", func(t *testing.T) {
		cases := map[string]model.PriceRecord{
			"shop not listed":  {Cost: model.Num(200), SalePrice: model.Num(300)},
			"zero cost":        {Cost: model.Num(0), SalePrice: model.Num(300), BooksPrices: listed},
			"missing cost":     {SalePrice: model.Num(300), BooksPrices: listed},
			"zero sale price":  {Cost: model.Num(200), SalePrice: model.Num(0), BooksPrices: listed},
			"missing sale":     {Cost: model.Num(200), BooksPrices: listed},
			"everything gone":  {},
			"unparseable cost": {Cost: model.Number{Float64: math.NaN(), Valid: true}, SalePrice: model.Num(300), BooksPrices: listed},
		}
		for name, r := range cases {
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, 0.0, Margin(&r, model.ShopBooks))
			})
		}
	})
}
