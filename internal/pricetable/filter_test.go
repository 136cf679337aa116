package pricetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookprice-service/internal/model"
)

func TestFilter(t *testing.T) {
	records := []model.PriceRecord{
		rec("BK-001", "佳句選集"),
		rec("BK-002", "Go 程式設計"),
		rec("BK-003", "最佳實務指南"),
		rec("bk-QUERY", "unrelated"),
	}

	t.Run("matches title substring case-insensitively", func(t *testing.T) {
		got := Filter(records, "佳")
		assert.Equal(t, []string{"BK-001", "BK-003"}, ids(got))
	})

	t.Run("matches product id substring case-insensitively", func(t *testing.T) {
		got := Filter(records, "bk-0")
		assert.Equal(t, []string{"BK-001", "BK-002", "BK-003"}, ids(got))

		got = Filter(records, "Query")
		assert.Equal(t, []string{"bk-QUERY"}, ids(got))
	})

	t.Run("no match yields empty set", func(t *testing.T) {
		got := Filter(records, "不存在")
		assert.Empty(t, got)
	})

	t.Run("empty query is identity", func(t *testing.T) {
		got := Filter(records, "")
		assert.Equal(t, ids(records), ids(got))
	})

	t.Run("whitespace-only query is identity", func(t *testing.T) {
		got := Filter(records, "   \t")
		assert.Equal(t, ids(records), ids(got))
	})

	t.Run("input order is preserved", func(t *testing.T) {
		got := Filter(records, "bk")
		assert.Equal(t, ids(records), ids(got))
	})

	t.Run("empty record set", func(t *testing.T) {
		assert.Empty(t, Filter(nil, "x"))
	})
}
