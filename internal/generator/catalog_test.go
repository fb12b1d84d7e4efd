package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopforge/internal/config"
	"shopforge/internal/sampling"
)

func TestNewCatalogRejectsBadWeights(t *testing.T) {
	cfg := config.Default()
	for i := range cfg.Categories {
		cfg.Categories[i].Weight = 0
	}
	_, err := NewCatalog(cfg)
	assert.Error(t, err)
}

func TestCatalogDrawFollowsWeights(t *testing.T) {
	cfg := config.Default()
	catalog, err := NewCatalog(cfg)
	require.NoError(t, err)

	src := sampling.New(81)
	counts := make(map[string]int)
	for i := 0; i < 20000; i++ {
		counts[catalog.Draw(src).Name]++
	}
	for _, cat := range cfg.Categories {
		observed := float64(counts[cat.Name]) / 20000
		assert.InDelta(t, cat.Weight, observed, 0.02, "category %s", cat.Name)
	}
}

func TestCatalogItemWeight(t *testing.T) {
	catalog, err := NewCatalog(config.Default())
	require.NoError(t, err)

	assert.Equal(t, 2.2, catalog.ItemWeight("Electronics"))
	assert.Equal(t, 0.8, catalog.ItemWeight("Books"))
	assert.Equal(t, 1.0, catalog.ItemWeight("Groceries"), "unknown categories fall back to neutral weight")
}
