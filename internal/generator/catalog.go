package generator

import (
	"fmt"

	"shopforge/internal/config"
	"shopforge/internal/sampling"
)

// Catalog is the immutable category model for one run: the configured
// categories plus a precomputed weighted chooser over them.
type Catalog struct {
	categories []config.Category
	byName     map[string]config.Category
	chooser    *sampling.Weighted
}

// NewCatalog builds the category model, rejecting malformed weights
// before any product is generated.
func NewCatalog(cfg *config.Config) (*Catalog, error) {
	weights := make([]float64, len(cfg.Categories))
	byName := make(map[string]config.Category, len(cfg.Categories))
	for i, cat := range cfg.Categories {
		weights[i] = cat.Weight
		byName[cat.Name] = cat
	}
	chooser, err := sampling.NewWeighted(weights)
	if err != nil {
		return nil, fmt.Errorf("invalid category weights: %w", err)
	}
	return &Catalog{categories: cfg.Categories, byName: byName, chooser: chooser}, nil
}

// Draw selects a category according to the configured weights.
func (c *Catalog) Draw(src *sampling.Source) config.Category {
	return c.categories[c.chooser.Draw(src)]
}

// ItemWeight returns the order-item selection weight for a category.
func (c *Catalog) ItemWeight(name string) float64 {
	if cat, ok := c.byName[name]; ok {
		return cat.ItemWeight
	}
	return 1.0
}
