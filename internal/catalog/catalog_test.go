package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/model"
)

func TestCatalog_Get(t *testing.T) {
	cat := catalog.New()

	t.Run("returns known creature", func(t *testing.T) {
		c, ok := cat.Get("creature-001")
		assert.True(t, ok)
		assert.Equal(t, "Chub Mackerel", c.NameEN)
		assert.Equal(t, catalog.RarityCommon, c.Rarity)
	})

	t.Run("unknown creature", func(t *testing.T) {
		_, ok := cat.Get("creature-999")
		assert.False(t, ok)
	})
}

func TestCatalog_PriceOf(t *testing.T) {
	cat := catalog.New()

	assert.Equal(t, int64(50), cat.PriceOf("creature-001"))
	assert.Equal(t, int64(150), cat.PriceOf("creature-004"))
	assert.Equal(t, int64(300), cat.PriceOf("creature-011"))

	t.Run("unknown creature costs flat 100", func(t *testing.T) {
		assert.Equal(t, int64(100), cat.PriceOf("creature-999"))
		assert.Equal(t, int64(100), cat.PriceOf("unknown"))
	})
}

func TestCatalog_SightingBase(t *testing.T) {
	cat := catalog.New()

	assert.Equal(t, int64(30), cat.SightingBase(catalog.RarityCommon))
	assert.Equal(t, int64(80), cat.SightingBase(catalog.RarityRare))
	assert.Equal(t, int64(150), cat.SightingBase(catalog.RarityLegendary))
	assert.Equal(t, int64(30), cat.SightingBase(catalog.Rarity("mythic")))
}

func TestCatalog_CleanupBase(t *testing.T) {
	cat := catalog.New()

	assert.Equal(t, int64(30), cat.CleanupBase(model.CleanupAmountHandful))
	assert.Equal(t, int64(50), cat.CleanupBase(model.CleanupAmountOneBag))
	assert.Equal(t, int64(100), cat.CleanupBase(model.CleanupAmountLarge))
	assert.Equal(t, int64(30), cat.CleanupBase(model.CleanupAmount("bulldozer")))
}

func TestCatalog_RarityOf(t *testing.T) {
	cat := catalog.New()

	assert.Equal(t, catalog.RarityLegendary, cat.RarityOf("creature-009"))
	assert.Equal(t, catalog.RarityCommon, cat.RarityOf("unknown"))
}

func TestCatalog_All(t *testing.T) {
	cat := catalog.New()

	all := cat.All()
	assert.Len(t, all, cat.Total())

	// mutating the returned slice must not leak into the catalog
	all[0].Name = "mutated"
	fresh, _ := cat.Get(all[0].ID)
	assert.NotEqual(t, "mutated", fresh.Name)
}
