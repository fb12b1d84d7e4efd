package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopforge/internal/config"
	"shopforge/internal/identity"
	"shopforge/internal/sampling"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(2024, time.January))
	assert.Equal(t, 29, daysInMonth(2024, time.February))
	assert.Equal(t, 28, daysInMonth(2023, time.February))
	assert.Equal(t, 30, daysInMonth(2023, time.April))
	assert.Equal(t, 31, daysInMonth(2023, time.December))
}

func TestDrawOrderDateStaysInWindow(t *testing.T) {
	cfg := config.Default()
	src := sampling.New(51)
	g, err := NewOrderGenerator(cfg, src, identity.NewProvider(src), nil)
	require.NoError(t, err)

	registration := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		d, err := g.drawOrderDate(registration)
		require.NoError(t, err)
		require.False(t, d.Before(registration), "date %s before registration", d)
		require.False(t, d.After(cfg.Dates.OrderEnd), "date %s past window end", d)
	}
}

func TestDrawOrderDateClampsLateRegistrations(t *testing.T) {
	cfg := config.Default()
	src := sampling.New(52)
	g, err := NewOrderGenerator(cfg, src, identity.NewProvider(src), nil)
	require.NoError(t, err)

	// Registered on the window end itself: orders may only land on the
	// last two days.
	d, err := g.drawOrderDate(cfg.Dates.OrderEnd)
	require.NoError(t, err)
	assert.False(t, d.Before(cfg.Dates.OrderEnd.AddDate(0, 0, -1)))
	assert.False(t, d.After(cfg.Dates.OrderEnd))
}

func TestDrawOrderDateFailsWhenYearsMissWindow(t *testing.T) {
	cfg := config.Default()
	cfg.Dates.OrderYears = []int{2020}
	src := sampling.New(53)
	g, err := NewOrderGenerator(cfg, src, identity.NewProvider(src), nil)
	require.NoError(t, err)

	_, err = g.drawOrderDate(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no order date found")
}

func TestGenerateBiasesOrdersTowardWhales(t *testing.T) {
	cfg := config.Default()
	cfg.Targets.Orders = 2000
	src := sampling.New(54)

	customers := NewCustomerGenerator(cfg, src, identity.NewProvider(src)).Generate()
	whales, err := SelectWhales(src, customers, cfg.Whales.Share)
	require.NoError(t, err)

	g, err := NewOrderGenerator(cfg, src, identity.NewProvider(src), whales)
	require.NoError(t, err)
	orders, err := g.Generate(customers)
	require.NoError(t, err)
	require.Len(t, orders, cfg.Targets.Orders)

	whaleOrders := 0
	for _, o := range orders {
		if whales[o.CustomerID] {
			whaleOrders++
		}
	}
	// 20% of customers at 7x weight hold 7/11 of the order mass.
	share := float64(whaleOrders) / float64(len(orders))
	assert.InDelta(t, 7.0/11.0, share, 0.05)
}
