package generator

import (
	"fmt"
	"math"

	"shopforge/internal/config"
	"shopforge/internal/models"
	"shopforge/internal/sampling"
)

// Base rating distribution over ratings 5..1.
var baseRatingWeights = []float64{0.40, 0.30, 0.15, 0.10, 0.05}

const (
	// Strength of the price-percentile tilt on ratings and its cap.
	ratingShiftStrength = 0.30
	ratingShiftCap      = 0.20
	ratingFloor         = 0.01

	// Reviews land 1..60 days after the order; anything past the
	// horizon is redrawn to land 1..45 days past the dataset end.
	reviewDelayMaxDays   = 60
	reviewOverflowDays   = 45
	reviewHorizonPadding = 60

	// Floor weight so zero-value lines stay eligible for sampling.
	reviewWeightFloor = 0.01
)

var neutralReviewTemplates = []string{
	"Overall solid value though a few minor quirks.",
	"Meets expectations but could use refinements.",
}

var negativeReviewTemplates = []string{
	"Item quality did not match the description.",
	"Had issues shortly after purchase; disappointed.",
}

var positiveReviewTemplates = map[string][]string{
	"Electronics": {
		"Performance exceeded expectations with seamless setup.",
		"Battery life and build quality are top-notch.",
	},
	"Clothing": {
		"Fits perfectly and fabric feels premium.",
		"Stylish and comfortable for everyday wear.",
	},
	"Home & Garden": {
		"Quality craftsmanship and easy assembly.",
		"Adds instant charm to the space.",
	},
	"Sports": {
		"Great durability during intense workouts.",
		"Lightweight and enhances performance.",
	},
	"Books": {
		"Engaging read with well-developed characters.",
		"Extremely informative and well structured.",
	},
}

// ReviewGenerator produces reviews by revenue-weighted sampling of
// order items, with ratings tilted by the product's price percentile.
type ReviewGenerator struct {
	cfg *config.Config
	src *sampling.Source
}

// NewReviewGenerator creates a review generator.
func NewReviewGenerator(cfg *config.Config, src *sampling.Source) *ReviewGenerator {
	return &ReviewGenerator{cfg: cfg, src: src}
}

// Generate builds exactly cfg.Targets.Reviews rows by drawing distinct
// order items without replacement, weighted by line total.
func (g *ReviewGenerator) Generate(orders []models.Order, items []models.OrderItem, products []models.Product) ([]models.Review, error) {
	orderByID := make(map[int]models.Order, len(orders))
	for _, o := range orders {
		orderByID[o.ID] = o
	}
	productByID := make(map[int]models.Product, len(products))
	prices := make([]float64, len(products))
	for i, p := range products {
		productByID[p.ID] = p
		prices[i] = p.Price
	}
	percentiles := sampling.PercentileRanks(prices)
	percentileByProduct := make(map[int]float64, len(products))
	for i, p := range products {
		percentileByProduct[p.ID] = percentiles[i]
	}

	weights := make([]float64, len(items))
	for i, item := range items {
		if item.LineTotal <= 0 {
			weights[i] = reviewWeightFloor
		} else {
			weights[i] = item.LineTotal
		}
	}
	chosen, err := g.src.WeightedSample(weights, g.cfg.Targets.Reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to sample order items for reviews: %w", err)
	}

	horizon := g.cfg.Dates.OrderEnd.AddDate(0, 0, reviewHorizonPadding)
	reviews := make([]models.Review, 0, g.cfg.Targets.Reviews)
	for reviewID, idx := range chosen {
		item := items[idx]
		order, ok := orderByID[item.OrderID]
		if !ok {
			return nil, fmt.Errorf("order item %d references unknown order %d", item.ID, item.OrderID)
		}
		product, ok := productByID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("order item %d references unknown product %d", item.ID, item.ProductID)
		}

		rating := 5 - g.src.WeightedIndex(ratingWeights(percentileByProduct[product.ID]))
		reviewDate := order.OrderDate.AddDate(0, 0, g.src.IntBetween(1, reviewDelayMaxDays))
		if reviewDate.After(horizon) {
			reviewDate = g.cfg.Dates.OrderEnd.AddDate(0, 0, g.src.IntBetween(1, reviewOverflowDays))
		}
		reviews = append(reviews, models.Review{
			ID:         reviewID + 1,
			ProductID:  product.ID,
			CustomerID: order.CustomerID,
			Rating:     rating,
			ReviewText: g.reviewText(rating, product.Category),
			ReviewDate: reviewDate,
		})
	}
	return reviews, nil
}

// ratingWeights tilts the base distribution by the product's price
// percentile: expensive products shift mass toward ratings 5 and 4,
// cheap ones toward 2 and 1. Probabilities are floored and
// renormalized.
func ratingWeights(pricePercentile float64) []float64 {
	weights := make([]float64, len(baseRatingWeights))
	copy(weights, baseRatingWeights)

	shift := (pricePercentile - 0.5) * ratingShiftStrength
	transfer := math.Min(math.Abs(shift), ratingShiftCap)
	if shift > 0 {
		weights[0] += transfer
		weights[1] += transfer / 2
		weights[3] -= transfer / 2
		weights[4] -= transfer
	} else {
		weights[0] -= transfer
		weights[1] -= transfer / 2
		weights[3] += transfer / 2
		weights[4] += transfer
	}

	total := 0.0
	for i := range weights {
		if weights[i] < ratingFloor {
			weights[i] = ratingFloor
		}
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

func (g *ReviewGenerator) reviewText(rating int, category string) string {
	switch {
	case rating >= 4:
		if templates, ok := positiveReviewTemplates[category]; ok {
			return templates[g.src.Intn(len(templates))]
		}
		return neutralReviewTemplates[g.src.Intn(len(neutralReviewTemplates))]
	case rating == 3:
		return neutralReviewTemplates[g.src.Intn(len(neutralReviewTemplates))]
	default:
		return negativeReviewTemplates[g.src.Intn(len(negativeReviewTemplates))]
	}
}
