package generator

import (
	"fmt"

	"shopforge/internal/common"
	"shopforge/internal/config"
	"shopforge/internal/models"
	"shopforge/internal/sampling"
)

// Initial per-order item count distribution over {1..5}.
var itemCountWeights = []float64{0.10, 0.35, 0.30, 0.15, 0.10}

// Per-item quantity distribution over {1..5}.
var quantityWeights = []float64{0.45, 0.30, 0.15, 0.07, 0.03}

// Whale orders get a +1 quantity bump with this probability, capped at
// the per-item maximum.
const (
	whaleQuantityBoostProbability = 0.3
	maxQuantity                   = 5
)

// Price-percentile coefficients for the two product selection vectors:
// weight = item_weight(category) * (base + scale * percentile). The
// whale vector tilts harder toward expensive products.
const (
	nonWhaleBase  = 0.65
	nonWhaleScale = 0.70
	whaleBase     = 0.85
	whaleScale    = 1.10
)

// OrderItemGenerator produces order line items, forces the global item
// count to the configured target, and recomputes order totals.
type OrderItemGenerator struct {
	cfg     *config.Config
	catalog *Catalog
	src     *sampling.Source
	whales  map[int]bool
}

// NewOrderItemGenerator creates an order-item generator.
func NewOrderItemGenerator(cfg *config.Config, catalog *Catalog, src *sampling.Source, whales map[int]bool) *OrderItemGenerator {
	return &OrderItemGenerator{cfg: cfg, catalog: catalog, src: src, whales: whales}
}

// Generate builds exactly cfg.Targets.OrderItems rows and overwrites
// each order's TotalAmount with the sum of its line totals. This is the
// only after-the-fact mutation in the whole pipeline.
func (g *OrderItemGenerator) Generate(orders []models.Order, products []models.Product) ([]models.OrderItem, error) {
	counts, err := g.balanceCounts(len(orders))
	if err != nil {
		return nil, err
	}

	whaleChooser, nonWhaleChooser, err := g.productChoosers(products)
	if err != nil {
		return nil, err
	}
	quantityChooser, err := sampling.NewWeighted(quantityWeights)
	if err != nil {
		return nil, err
	}
	discountWeights := make([]float64, len(g.cfg.Discounts))
	for i, d := range g.cfg.Discounts {
		discountWeights[i] = d.Weight
	}
	discountChooser, err := sampling.NewWeighted(discountWeights)
	if err != nil {
		return nil, fmt.Errorf("invalid discount weights: %w", err)
	}

	items := make([]models.OrderItem, 0, g.cfg.Targets.OrderItems)
	itemID := 1
	for oi := range orders {
		isWhale := g.whales[orders[oi].CustomerID]
		chooser := nonWhaleChooser
		if isWhale {
			chooser = whaleChooser
		}
		for n := 0; n < counts[oi]; n++ {
			product := products[chooser.Draw(g.src)]
			quantity := quantityChooser.Draw(g.src) + 1
			if isWhale && g.src.Float64() < whaleQuantityBoostProbability && quantity < maxQuantity {
				quantity++
			}
			unitPrice := common.Round2(product.Price * g.src.Uniform(0.95, 1.05))
			discount := g.cfg.Discounts[discountChooser.Draw(g.src)].Value
			items = append(items, models.OrderItem{
				ID:        itemID,
				OrderID:   orders[oi].ID,
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: unitPrice,
				Discount:  discount,
				LineTotal: common.LineTotal(quantity, unitPrice, discount),
			})
			itemID++
		}
	}

	applyOrderTotals(orders, items)
	return items, nil
}

// balanceCounts draws an initial item count per order, then increments
// or decrements uniformly chosen orders until the sum hits the target
// exactly. Feasibility is checked up front and the loop is capped, so
// it cannot spin forever.
func (g *OrderItemGenerator) balanceCounts(orderCount int) ([]int, error) {
	target := g.cfg.Targets.OrderItems
	if target < orderCount*config.MinItemsPerOrder || target > orderCount*config.MaxItemsPerOrder {
		return nil, fmt.Errorf("order item target %d is infeasible for %d orders: must be in [%d, %d]",
			target, orderCount, orderCount*config.MinItemsPerOrder, orderCount*config.MaxItemsPerOrder)
	}

	countChooser, err := sampling.NewWeighted(itemCountWeights)
	if err != nil {
		return nil, err
	}
	counts := make([]int, orderCount)
	total := 0
	for i := range counts {
		counts[i] = countChooser.Draw(g.src) + 1
		total += counts[i]
	}

	diff := total - target
	if diff < 0 {
		diff = -diff
	}
	maxIterations := 100 * (orderCount + diff)
	for iteration := 0; total != target; iteration++ {
		if iteration >= maxIterations {
			return nil, fmt.Errorf("item count balancing did not converge after %d iterations (total %d, target %d)",
				maxIterations, total, target)
		}
		i := g.src.Intn(orderCount)
		switch {
		case total < target && counts[i] < config.MaxItemsPerOrder:
			counts[i]++
			total++
		case total > target && counts[i] > config.MinItemsPerOrder:
			counts[i]--
			total--
		}
	}
	return counts, nil
}

// productChoosers precomputes the whale and non-whale product selection
// vectors from category item weights and price percentiles.
func (g *OrderItemGenerator) productChoosers(products []models.Product) (whale, nonWhale *sampling.Weighted, err error) {
	prices := make([]float64, len(products))
	for i, p := range products {
		prices[i] = p.Price
	}
	percentiles := sampling.PercentileRanks(prices)

	whaleWeights := make([]float64, len(products))
	nonWhaleWeights := make([]float64, len(products))
	for i, p := range products {
		cw := g.catalog.ItemWeight(p.Category)
		whaleWeights[i] = cw * (whaleBase + whaleScale*percentiles[i])
		nonWhaleWeights[i] = cw * (nonWhaleBase + nonWhaleScale*percentiles[i])
	}
	whale, err = sampling.NewWeighted(whaleWeights)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid whale product weights: %w", err)
	}
	nonWhale, err = sampling.NewWeighted(nonWhaleWeights)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid product weights: %w", err)
	}
	return whale, nonWhale, nil
}

// applyOrderTotals recomputes each order's total from its line items.
// Orders that ended up with no items keep a 0.0 total.
func applyOrderTotals(orders []models.Order, items []models.OrderItem) {
	lineTotals := make(map[int][]float64, len(orders))
	for _, item := range items {
		lineTotals[item.OrderID] = append(lineTotals[item.OrderID], item.LineTotal)
	}
	for i := range orders {
		orders[i].TotalAmount = common.Sum2(lineTotals[orders[i].ID])
	}
}
