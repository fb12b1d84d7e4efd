package config

import (
	"fmt"
	"math"
	"time"

	"github.com/BurntSushi/toml"
)

// Per-order line item bounds. The count balancer can only move an
// order's item count inside this range.
const (
	MinItemsPerOrder = 1
	MaxItemsPerOrder = 5
)

const weightSumTolerance = 1e-9

// Config drives a full generation run. Default() mirrors the standard
// dataset profile; a TOML file can override any part of it.
type Config struct {
	Seed                 int64          `toml:"seed"`
	Targets              Targets        `toml:"targets"`
	Whales               Whales         `toml:"whales"`
	Dates                DateWindows    `toml:"dates"`
	Categories           []Category     `toml:"categories"`
	Discounts            []DiscountBand `toml:"discounts"`
	OrderStatuses        []Option       `toml:"order_statuses"`
	PaymentMethods       []Option       `toml:"payment_methods"`
	SeasonalMonthWeights []float64      `toml:"seasonal_month_weights"`
}

// Targets are the exact row counts each table must end up with.
type Targets struct {
	Products   int `toml:"products"`
	Customers  int `toml:"customers"`
	Orders     int `toml:"orders"`
	OrderItems int `toml:"order_items"`
	Reviews    int `toml:"reviews"`
}

// Whales configures the high-value customer cohort.
type Whales struct {
	Share         float64 `toml:"share"`
	OrderWeight   float64 `toml:"order_weight"`
	RevenueTarget float64 `toml:"revenue_target"`
}

// DateWindows bound every generated date.
type DateWindows struct {
	ProductWindowStart time.Time `toml:"product_window_start"`
	ProductWindowEnd   time.Time `toml:"product_window_end"`
	RegistrationStart  time.Time `toml:"registration_start"`
	RegistrationEnd    time.Time `toml:"registration_end"`
	OrderEnd           time.Time `toml:"order_end"`
	OrderYears         []int     `toml:"order_years"`
}

// Category defines one product category: its subcategories, price
// range, selection weight for product generation, and the relative
// weight its products get during order item selection.
type Category struct {
	Name          string   `toml:"name"`
	Subcategories []string `toml:"subcategories"`
	MinPrice      float64  `toml:"min_price"`
	MaxPrice      float64  `toml:"max_price"`
	Weight        float64  `toml:"weight"`
	ItemWeight    float64  `toml:"item_weight"`
}

// DiscountBand is one allowed discount value with its frequency.
type DiscountBand struct {
	Value  float64 `toml:"value"`
	Weight float64 `toml:"weight"`
}

// Option is a categorical value with a selection weight.
type Option struct {
	Name   string  `toml:"name"`
	Weight float64 `toml:"weight"`
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Default returns the standard generation profile.
func Default() *Config {
	return &Config{
		Seed: 20241113,
		Targets: Targets{
			Products:   200,
			Customers:  1000,
			Orders:     3000,
			OrderItems: 8000,
			Reviews:    2500,
		},
		Whales: Whales{
			Share:         0.20,
			OrderWeight:   7,
			RevenueTarget: 0.60,
		},
		Dates: DateWindows{
			ProductWindowStart: date(2022, 1, 1),
			ProductWindowEnd:   date(2024, 10, 31),
			RegistrationStart:  date(2023, 1, 1),
			RegistrationEnd:    date(2024, 10, 31),
			OrderEnd:           date(2024, 12, 31),
			OrderYears:         []int{2023, 2024},
		},
		Categories: []Category{
			{Name: "Electronics", Subcategories: []string{"Smartphones", "Laptops", "Audio", "Gaming", "Wearables"}, MinPrice: 79, MaxPrice: 2500, Weight: 0.30, ItemWeight: 2.2},
			{Name: "Clothing", Subcategories: []string{"Men", "Women", "Kids", "Accessories"}, MinPrice: 15, MaxPrice: 300, Weight: 0.25, ItemWeight: 1.0},
			{Name: "Home & Garden", Subcategories: []string{"Furniture", "Kitchen", "Outdoor", "Decor"}, MinPrice: 25, MaxPrice: 1000, Weight: 0.20, ItemWeight: 1.2},
			{Name: "Sports", Subcategories: []string{"Fitness", "Outdoor", "Team Sports", "Cycling"}, MinPrice: 20, MaxPrice: 800, Weight: 0.15, ItemWeight: 1.1},
			{Name: "Books", Subcategories: []string{"Fiction", "Non-fiction", "Children", "Academic"}, MinPrice: 8, MaxPrice: 120, Weight: 0.10, ItemWeight: 0.8},
		},
		Discounts: []DiscountBand{
			{Value: 0.0, Weight: 0.70},
			{Value: 0.10, Weight: 0.20},
			{Value: 0.20, Weight: 0.08},
			{Value: 0.25, Weight: 0.02},
		},
		OrderStatuses: []Option{
			{Name: "Completed", Weight: 0.80},
			{Name: "Processing", Weight: 0.10},
			{Name: "Cancelled", Weight: 0.05},
			{Name: "Returned", Weight: 0.05},
		},
		PaymentMethods: []Option{
			{Name: "Credit Card", Weight: 0.60},
			{Name: "PayPal", Weight: 0.25},
			{Name: "Debit", Weight: 0.15},
		},
		SeasonalMonthWeights: []float64{
			0.85, 0.80, 0.90, 0.95, 1.00, 1.05, 1.10, 1.05, 1.10, 1.20, 1.60, 1.65,
		},
	}
}

// Load reads a TOML file over the defaults and validates the result.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(filename, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.normalizeDates()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalizeDates rebuilds every window boundary as midnight UTC so a
// config file parsed in a local zone cannot shift day arithmetic.
func (c *Config) normalizeDates() {
	norm := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	c.Dates.ProductWindowStart = norm(c.Dates.ProductWindowStart)
	c.Dates.ProductWindowEnd = norm(c.Dates.ProductWindowEnd)
	c.Dates.RegistrationStart = norm(c.Dates.RegistrationStart)
	c.Dates.RegistrationEnd = norm(c.Dates.RegistrationEnd)
	c.Dates.OrderEnd = norm(c.Dates.OrderEnd)
}

func weightsSumToOne(sum float64) bool {
	return math.Abs(sum-1.0) <= weightSumTolerance
}

// Validate rejects malformed or infeasible configurations before any
// generation starts.
func (c *Config) Validate() error {
	t := c.Targets
	if t.Products <= 0 || t.Customers <= 0 || t.Orders <= 0 || t.OrderItems <= 0 || t.Reviews <= 0 {
		return fmt.Errorf("all generation targets must be positive, got %+v", t)
	}
	if t.OrderItems < t.Orders*MinItemsPerOrder || t.OrderItems > t.Orders*MaxItemsPerOrder {
		return fmt.Errorf("order item target %d is infeasible for %d orders: must be in [%d, %d]",
			t.OrderItems, t.Orders, t.Orders*MinItemsPerOrder, t.Orders*MaxItemsPerOrder)
	}
	if t.Reviews > t.OrderItems {
		return fmt.Errorf("review target %d exceeds order item target %d: reviews are sampled from items without replacement",
			t.Reviews, t.OrderItems)
	}

	if c.Whales.Share <= 0 || c.Whales.Share > 1 {
		return fmt.Errorf("whale share must be in (0, 1], got %v", c.Whales.Share)
	}
	if c.Whales.OrderWeight < 1 {
		return fmt.Errorf("whale order weight must be at least 1, got %v", c.Whales.OrderWeight)
	}
	if c.Whales.RevenueTarget <= 0 || c.Whales.RevenueTarget > 1 {
		return fmt.Errorf("whale revenue target must be in (0, 1], got %v", c.Whales.RevenueTarget)
	}

	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one category must be configured")
	}
	catWeightSum := 0.0
	for i, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		if len(cat.Subcategories) == 0 {
			return fmt.Errorf("category %q has no subcategories", cat.Name)
		}
		if cat.MinPrice <= 0 || cat.MaxPrice <= cat.MinPrice {
			return fmt.Errorf("category %q has invalid price range [%v, %v]", cat.Name, cat.MinPrice, cat.MaxPrice)
		}
		if cat.Weight <= 0 || cat.ItemWeight <= 0 {
			return fmt.Errorf("category %q has non-positive weights", cat.Name)
		}
		catWeightSum += cat.Weight
	}
	if !weightsSumToOne(catWeightSum) {
		return fmt.Errorf("category weights sum to %v, expected 1", catWeightSum)
	}

	if len(c.Discounts) == 0 {
		return fmt.Errorf("at least one discount band must be configured")
	}
	discountWeightSum := 0.0
	for _, d := range c.Discounts {
		if d.Value < 0 || d.Value >= 1 {
			return fmt.Errorf("discount value %v must be in [0, 1)", d.Value)
		}
		if d.Weight <= 0 {
			return fmt.Errorf("discount value %v has non-positive weight", d.Value)
		}
		discountWeightSum += d.Weight
	}
	if !weightsSumToOne(discountWeightSum) {
		return fmt.Errorf("discount weights sum to %v, expected 1", discountWeightSum)
	}

	if err := validateOptions("order status", c.OrderStatuses); err != nil {
		return err
	}
	if err := validateOptions("payment method", c.PaymentMethods); err != nil {
		return err
	}

	if len(c.SeasonalMonthWeights) != 12 {
		return fmt.Errorf("seasonal month weights must have 12 entries, got %d", len(c.SeasonalMonthWeights))
	}
	for m, w := range c.SeasonalMonthWeights {
		if w <= 0 {
			return fmt.Errorf("seasonal weight for month %d must be positive, got %v", m+1, w)
		}
	}

	d := c.Dates
	if !d.ProductWindowStart.Before(d.ProductWindowEnd) {
		return fmt.Errorf("product date window is empty")
	}
	if !d.RegistrationStart.Before(d.RegistrationEnd) {
		return fmt.Errorf("registration date window is empty")
	}
	if !d.RegistrationStart.Before(d.OrderEnd) {
		return fmt.Errorf("order end date %s precedes the registration window", d.OrderEnd.Format("2006-01-02"))
	}
	if len(d.OrderYears) == 0 {
		return fmt.Errorf("at least one order year must be configured")
	}
	return nil
}

// Category returns the named category definition.
func (c *Config) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
