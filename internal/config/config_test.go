package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsNonPositiveTargets(t *testing.T) {
	cfg := Default()
	cfg.Targets.Products = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsInfeasibleOrderItemTarget(t *testing.T) {
	tests := []struct {
		name       string
		orderItems int
	}{
		{"below one item per order", 2999},
		{"above five items per order", 15001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Targets.OrderItems = tt.orderItems
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "infeasible")
		})
	}
}

func TestValidateRejectsReviewTargetAboveItemTarget(t *testing.T) {
	cfg := Default()
	cfg.Targets.Reviews = cfg.Targets.OrderItems + 1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without replacement")
}

func TestValidateRejectsBadCategoryWeights(t *testing.T) {
	cfg := Default()
	cfg.Categories[0].Weight = 0.50
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category weights")
}

func TestValidateRejectsBadPriceRange(t *testing.T) {
	cfg := Default()
	cfg.Categories[0].MaxPrice = cfg.Categories[0].MinPrice
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadDiscounts(t *testing.T) {
	cfg := Default()
	cfg.Discounts[0].Value = 1.0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Discounts[0].Weight = 0.60
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadWhales(t *testing.T) {
	cfg := Default()
	cfg.Whales.Share = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Whales.OrderWeight = 0.5
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Whales.RevenueTarget = 1.5
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadSeasonalWeights(t *testing.T) {
	cfg := Default()
	cfg.SeasonalMonthWeights = cfg.SeasonalMonthWeights[:11]
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SeasonalMonthWeights[3] = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyDateWindows(t *testing.T) {
	cfg := Default()
	cfg.Dates.ProductWindowEnd = cfg.Dates.ProductWindowStart
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Dates.OrderYears = nil
	assert.Error(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
seed = 7

[targets]
orders = 100
order_items = 300
reviews = 200
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 100, cfg.Targets.Orders)
	assert.Equal(t, 300, cfg.Targets.OrderItems)
	assert.Equal(t, 200, cfg.Targets.Reviews)
	// Untouched sections keep their defaults.
	assert.Equal(t, 200, cfg.Targets.Products)
	assert.Len(t, cfg.Categories, 5)
}

func TestLoadNormalizesDatesToMidnightUTC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[dates]
order_end = 2025-06-30T15:04:05Z
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), cfg.Dates.OrderEnd)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[targets]
order_items = 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCategoryLookup(t *testing.T) {
	cfg := Default()
	cat, ok := cfg.Category("Books")
	require.True(t, ok)
	assert.Equal(t, 8.0, cat.MinPrice)
	assert.Equal(t, 120.0, cat.MaxPrice)

	_, ok = cfg.Category("Groceries")
	assert.False(t, ok)
}
