package generator

import (
	"fmt"
	"time"

	"shopforge/internal/config"
	"shopforge/internal/models"
	"shopforge/internal/sampling"
)

// Probability that an order ships to the customer's own address.
const shippingReuseProbability = 0.85

// Orders that cannot land inside the date window after this many draws
// indicate an impossible year/window combination in the config.
const maxOrderDateAttempts = 100000

// OrderGenerator produces orders with whale-biased customer selection
// and seasonally weighted order dates. TotalAmount stays zero until the
// order-item stage fills it in.
type OrderGenerator struct {
	cfg    *config.Config
	src    *sampling.Source
	ident  IdentityProvider
	whales map[int]bool

	monthChooser *sampling.Weighted
}

// NewOrderGenerator creates an order generator for the given whale set.
func NewOrderGenerator(cfg *config.Config, src *sampling.Source, ident IdentityProvider, whales map[int]bool) (*OrderGenerator, error) {
	monthChooser, err := sampling.NewWeighted(cfg.SeasonalMonthWeights)
	if err != nil {
		return nil, fmt.Errorf("invalid seasonal month weights: %w", err)
	}
	return &OrderGenerator{cfg: cfg, src: src, ident: ident, whales: whales, monthChooser: monthChooser}, nil
}

// Generate builds exactly cfg.Targets.Orders rows. Customer selection
// normalizes whale weights once over the whole customer set and reuses
// them for every draw, so a customer can place many orders.
func (g *OrderGenerator) Generate(customers []models.Customer) ([]models.Order, error) {
	weights := make([]float64, len(customers))
	for i, c := range customers {
		if g.whales[c.ID] {
			weights[i] = g.cfg.Whales.OrderWeight
		} else {
			weights[i] = 1
		}
	}
	customerChooser, err := sampling.NewWeighted(weights)
	if err != nil {
		return nil, fmt.Errorf("invalid customer weights: %w", err)
	}
	statusChooser, err := sampling.NewWeighted(optionWeights(g.cfg.OrderStatuses))
	if err != nil {
		return nil, fmt.Errorf("invalid order status weights: %w", err)
	}
	paymentChooser, err := sampling.NewWeighted(optionWeights(g.cfg.PaymentMethods))
	if err != nil {
		return nil, fmt.Errorf("invalid payment method weights: %w", err)
	}

	orders := make([]models.Order, 0, g.cfg.Targets.Orders)
	for id := 1; id <= g.cfg.Targets.Orders; id++ {
		customer := customers[customerChooser.Draw(g.src)]
		orderDate, err := g.drawOrderDate(customer.RegistrationDate)
		if err != nil {
			return nil, err
		}
		address, city, state, zip, country := g.shippingAddress(customer)
		orders = append(orders, models.Order{
			ID:              id,
			CustomerID:      customer.ID,
			OrderDate:       orderDate,
			Status:          g.cfg.OrderStatuses[statusChooser.Draw(g.src)].Name,
			PaymentMethod:   g.cfg.PaymentMethods[paymentChooser.Draw(g.src)].Name,
			ShippingAddress: address,
			ShippingCity:    city,
			ShippingState:   state,
			ShippingZip:     zip,
			ShippingCountry: country,
			TotalAmount:     0,
		})
	}
	return orders, nil
}

// drawOrderDate picks a year, a seasonally weighted month, and a
// uniform day, redrawing until the date lands in
// [registration, order end]. Registrations on or past the end date are
// clamped to the day before it.
func (g *OrderGenerator) drawOrderDate(registration time.Time) (time.Time, error) {
	end := g.cfg.Dates.OrderEnd
	if !registration.Before(end) {
		registration = end.AddDate(0, 0, -1)
	}
	for attempt := 0; attempt < maxOrderDateAttempts; attempt++ {
		year := g.cfg.Dates.OrderYears[g.src.Intn(len(g.cfg.Dates.OrderYears))]
		month := time.Month(g.monthChooser.Draw(g.src) + 1)
		day := g.src.IntBetween(1, daysInMonth(year, month))
		candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if !candidate.Before(registration) && !candidate.After(end) {
			return candidate, nil
		}
	}
	return time.Time{}, fmt.Errorf("no order date found in [%s, %s] after %d attempts: order years do not cover the window",
		registration.Format("2006-01-02"), end.Format("2006-01-02"), maxOrderDateAttempts)
}

func (g *OrderGenerator) shippingAddress(customer models.Customer) (address, city, state, zip, country string) {
	if g.src.Float64() < shippingReuseProbability {
		return customer.Address, customer.City, customer.State, customer.Zip, customer.Country
	}
	return g.ident.StreetAddress(), g.ident.City(), g.ident.StateAbbr(), g.ident.PostalCode(), "USA"
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func optionWeights(options []config.Option) []float64 {
	weights := make([]float64, len(options))
	for i, o := range options {
		weights[i] = o.Weight
	}
	return weights
}
