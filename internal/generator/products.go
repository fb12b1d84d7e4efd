package generator

import (
	"math"

	"shopforge/internal/common"
	"shopforge/internal/config"
	"shopforge/internal/models"
	"shopforge/internal/sampling"
)

// Margin band every product must land in after rounding.
const (
	minMargin = 0.20
	maxMargin = 0.50
)

// ProductGenerator produces the product table. Products have no
// foreign keys, so this is the first stage of a run.
type ProductGenerator struct {
	cfg     *config.Config
	catalog *Catalog
	src     *sampling.Source
	ident   IdentityProvider
}

// NewProductGenerator creates a product generator.
func NewProductGenerator(cfg *config.Config, catalog *Catalog, src *sampling.Source, ident IdentityProvider) *ProductGenerator {
	return &ProductGenerator{cfg: cfg, catalog: catalog, src: src, ident: ident}
}

// Generate builds exactly cfg.Targets.Products rows.
func (g *ProductGenerator) Generate() []models.Product {
	products := make([]models.Product, 0, g.cfg.Targets.Products)
	for id := 1; id <= g.cfg.Targets.Products; id++ {
		cat := g.catalog.Draw(g.src)
		subcategory := cat.Subcategories[g.src.Intn(len(cat.Subcategories))]
		price := common.Round2(g.src.Uniform(cat.MinPrice, cat.MaxPrice))
		margin := g.src.Uniform(minMargin, maxMargin)
		products = append(products, models.Product{
			ID:            id,
			Name:          g.ident.CatchPhrase(),
			Category:      cat.Name,
			Subcategory:   subcategory,
			Price:         price,
			Cost:          costForMargin(price, margin),
			StockQuantity: g.src.IntBetween(10, 1000),
			Supplier:      g.ident.CompanyName(),
			CreatedDate:   g.src.DateBetween(g.cfg.Dates.ProductWindowStart, g.cfg.Dates.ProductWindowEnd),
		})
	}
	return products
}

// costForMargin derives cost = price * (1 - margin) at two decimals.
// Rounding can nudge the effective margin just outside the band, so the
// cost is clamped back into [price*(1-maxMargin), price*(1-minMargin)].
func costForMargin(price, margin float64) float64 {
	cost := common.Round2(price * (1 - margin))
	lo := math.Ceil(price*(1-maxMargin)*100) / 100
	hi := math.Floor(price*(1-minMargin)*100) / 100
	if cost < lo {
		cost = lo
	}
	if cost > hi {
		cost = hi
	}
	return cost
}
