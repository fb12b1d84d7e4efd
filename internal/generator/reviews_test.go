package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopforge/internal/config"
	"shopforge/internal/models"
	"shopforge/internal/sampling"
)

func TestRatingWeightsSumToOne(t *testing.T) {
	for _, pct := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		weights := ratingWeights(pct)
		require.Len(t, weights, 5)
		sum := 0.0
		for _, w := range weights {
			require.GreaterOrEqual(t, w, ratingFloor-1e-12)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "percentile %v", pct)
	}
}

func TestRatingWeightsTiltWithPrice(t *testing.T) {
	cheap := ratingWeights(0.0)
	mid := ratingWeights(0.5)
	expensive := ratingWeights(1.0)

	// Index 0 is the five-star weight, index 4 the one-star weight.
	assert.Greater(t, expensive[0], mid[0])
	assert.Greater(t, mid[0], cheap[0])
	assert.Greater(t, cheap[4], expensive[4])

	// The midpoint leaves the base distribution untouched.
	for i, w := range mid {
		assert.InDelta(t, baseRatingWeights[i], w, 1e-9, "weight %d", i)
	}
}

func TestRatingWeightsShiftIsCapped(t *testing.T) {
	weights := ratingWeights(1.0)
	// (1.0 - 0.5) * 0.30 = 0.15, under the 0.20 cap.
	assert.InDelta(t, baseRatingWeights[0]+0.15, weights[0], 1e-9)
}

func TestReviewTextMatchesRating(t *testing.T) {
	src := sampling.New(61)
	g := NewReviewGenerator(config.Default(), src)

	for i := 0; i < 50; i++ {
		assert.Contains(t, positiveReviewTemplates["Electronics"], g.reviewText(5, "Electronics"))
		assert.Contains(t, positiveReviewTemplates["Books"], g.reviewText(4, "Books"))
		assert.Contains(t, neutralReviewTemplates, g.reviewText(3, "Electronics"))
		assert.Contains(t, negativeReviewTemplates, g.reviewText(2, "Sports"))
		assert.Contains(t, negativeReviewTemplates, g.reviewText(1, "Clothing"))
	}
}

func TestReviewTextFallsBackForUnknownCategory(t *testing.T) {
	src := sampling.New(62)
	g := NewReviewGenerator(config.Default(), src)
	assert.Contains(t, neutralReviewTemplates, g.reviewText(5, "Groceries"))
}

func reviewFixtureProducts() []models.Product {
	return []models.Product{
		{ID: 1, Category: "Electronics", Price: 899.99},
		{ID: 2, Category: "Books", Price: 14.50},
		{ID: 3, Category: "Sports", Price: 120.00},
	}
}

func reviewFixtureItems(orders []models.Order, perOrder int) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(orders)*perOrder)
	id := 1
	for _, o := range orders {
		for n := 0; n < perOrder; n++ {
			items = append(items, models.OrderItem{
				ID:        id,
				OrderID:   o.ID,
				ProductID: id%3 + 1,
				Quantity:  1,
				UnitPrice: 10,
				LineTotal: float64(10 + id%7),
			})
			id++
		}
	}
	return items
}

func TestReviewDatesNeverPrecedeTheirOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Targets.Reviews = 40

	// One order right at the window edge, one mid-year. Distinct
	// customers let each review be traced back to its order.
	orders := []models.Order{
		{ID: 1, CustomerID: 11, OrderDate: time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC)},
		{ID: 2, CustomerID: 22, OrderDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	orderDateByCustomer := map[int]time.Time{
		11: orders[0].OrderDate,
		22: orders[1].OrderDate,
	}
	items := reviewFixtureItems(orders, 25)

	g := NewReviewGenerator(cfg, sampling.New(63))
	reviews, err := g.Generate(orders, items, reviewFixtureProducts())
	require.NoError(t, err)
	require.Len(t, reviews, cfg.Targets.Reviews)

	horizon := cfg.Dates.OrderEnd.AddDate(0, 0, reviewHorizonPadding)
	for _, r := range reviews {
		orderDate, ok := orderDateByCustomer[r.CustomerID]
		require.True(t, ok, "review %d has unexpected customer %d", r.ID, r.CustomerID)
		require.False(t, r.ReviewDate.Before(orderDate.AddDate(0, 0, 1)),
			"review %d on %s precedes order on %s", r.ID, r.ReviewDate, orderDate)
		require.False(t, r.ReviewDate.After(horizon),
			"review %d on %s past horizon", r.ID, r.ReviewDate)
	}
}

func TestReviewDatesPastHorizonAreRedrawn(t *testing.T) {
	cfg := config.Default()
	cfg.Targets.Reviews = 30
	cfg.Dates.OrderEnd = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	// An order far past the window end pushes every delayed date over
	// the horizon, forcing the redraw branch.
	orders := []models.Order{
		{ID: 1, CustomerID: 11, OrderDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
	}
	items := reviewFixtureItems(orders, 30)

	g := NewReviewGenerator(cfg, sampling.New(64))
	reviews, err := g.Generate(orders, items, reviewFixtureProducts())
	require.NoError(t, err)
	require.Len(t, reviews, cfg.Targets.Reviews)

	for _, r := range reviews {
		require.True(t, r.ReviewDate.After(cfg.Dates.OrderEnd),
			"review %d on %s should land past the window end", r.ID, r.ReviewDate)
		require.False(t, r.ReviewDate.After(cfg.Dates.OrderEnd.AddDate(0, 0, reviewOverflowDays)),
			"review %d on %s past the redraw window", r.ID, r.ReviewDate)
	}
}
