package validation

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"shopforge/internal/config"
	"shopforge/internal/models"
)

// Soft-check tolerances.
const (
	whaleShareTolerance   = 0.02
	discountFreqTolerance = 0.05
)

// Category whose presence in an order should raise its average value.
const electronicsCategory = "Electronics"

// Engine runs referential and business-rule checks after all five
// tables exist. Hard checks return an error and the dataset must not be
// exported; soft checks come back as warnings.
type Engine struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewEngine creates a validation engine.
func NewEngine(cfg *config.Config, log *logrus.Logger) *Engine {
	return &Engine{cfg: cfg, log: log}
}

// Validate runs every hard check, then every soft check. Soft
// deviations are logged and returned as warnings.
func (e *Engine) Validate(ds *models.Dataset, whales map[int]bool) ([]string, error) {
	if err := e.checkCounts(ds); err != nil {
		return nil, err
	}
	if err := e.checkReferentialIntegrity(ds); err != nil {
		return nil, err
	}
	if err := e.checkOrderDates(ds); err != nil {
		return nil, err
	}
	if err := e.checkMargins(ds); err != nil {
		return nil, err
	}

	var warnings []string
	warnings = append(warnings, e.checkWhaleRevenueShare(ds, whales)...)
	warnings = append(warnings, e.checkElectronicsOrderValue(ds)...)
	warnings = append(warnings, e.checkDiscountDistribution(ds)...)
	for _, w := range warnings {
		e.log.Warn(w)
	}
	return warnings, nil
}

func (e *Engine) checkCounts(ds *models.Dataset) error {
	t := e.cfg.Targets
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"products", len(ds.Products), t.Products},
		{"customers", len(ds.Customers), t.Customers},
		{"orders", len(ds.Orders), t.Orders},
		{"order_items", len(ds.OrderItems), t.OrderItems},
		{"reviews", len(ds.Reviews), t.Reviews},
	}
	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("%s row count %d does not match target %d", c.name, c.got, c.want)
		}
	}
	return nil
}

func (e *Engine) checkReferentialIntegrity(ds *models.Dataset) error {
	customerIDs := make(map[int]bool, len(ds.Customers))
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
	}
	productIDs := make(map[int]bool, len(ds.Products))
	for _, p := range ds.Products {
		productIDs[p.ID] = true
	}
	orderIDs := make(map[int]bool, len(ds.Orders))
	for _, o := range ds.Orders {
		orderIDs[o.ID] = true
	}

	for _, o := range ds.Orders {
		if !customerIDs[o.CustomerID] {
			return fmt.Errorf("order %d references unknown customer %d", o.ID, o.CustomerID)
		}
	}
	for _, item := range ds.OrderItems {
		if !orderIDs[item.OrderID] {
			return fmt.Errorf("order item %d references unknown order %d", item.ID, item.OrderID)
		}
		if !productIDs[item.ProductID] {
			return fmt.Errorf("order item %d references unknown product %d", item.ID, item.ProductID)
		}
	}
	for _, rv := range ds.Reviews {
		if !productIDs[rv.ProductID] {
			return fmt.Errorf("review %d references unknown product %d", rv.ID, rv.ProductID)
		}
		if !customerIDs[rv.CustomerID] {
			return fmt.Errorf("review %d references unknown customer %d", rv.ID, rv.CustomerID)
		}
	}
	return nil
}

func (e *Engine) checkOrderDates(ds *models.Dataset) error {
	registrations := make(map[int]models.Customer, len(ds.Customers))
	for _, c := range ds.Customers {
		registrations[c.ID] = c
	}
	for _, o := range ds.Orders {
		customer := registrations[o.CustomerID]
		if o.OrderDate.Before(customer.RegistrationDate) {
			return fmt.Errorf("order %d on %s predates customer %d registration on %s",
				o.ID, o.OrderDate.Format("2006-01-02"), customer.ID, customer.RegistrationDate.Format("2006-01-02"))
		}
	}
	return nil
}

func (e *Engine) checkMargins(ds *models.Dataset) error {
	for _, p := range ds.Products {
		margin := p.Margin()
		if margin < 0.20 || margin > 0.50 {
			return fmt.Errorf("product %d margin %.4f outside [0.20, 0.50]", p.ID, margin)
		}
	}
	return nil
}

func (e *Engine) checkWhaleRevenueShare(ds *models.Dataset, whales map[int]bool) []string {
	var whaleRevenue, totalRevenue float64
	for _, o := range ds.Orders {
		totalRevenue += o.TotalAmount
		if whales[o.CustomerID] {
			whaleRevenue += o.TotalAmount
		}
	}
	if totalRevenue <= 0 {
		return nil
	}
	share := whaleRevenue / totalRevenue
	if share < e.cfg.Whales.RevenueTarget-whaleShareTolerance {
		return []string{fmt.Sprintf("whale revenue share %.2f%% below target %.2f%%",
			share*100, e.cfg.Whales.RevenueTarget*100)}
	}
	return nil
}

func (e *Engine) checkElectronicsOrderValue(ds *models.Dataset) []string {
	productCategory := make(map[int]string, len(ds.Products))
	for _, p := range ds.Products {
		productCategory[p.ID] = p.Category
	}
	hasElectronics := make(map[int]bool)
	for _, item := range ds.OrderItems {
		if productCategory[item.ProductID] == electronicsCategory {
			hasElectronics[item.OrderID] = true
		}
	}

	var electronicsSum, otherSum float64
	var electronicsCount, otherCount int
	for _, o := range ds.Orders {
		if hasElectronics[o.ID] {
			electronicsSum += o.TotalAmount
			electronicsCount++
		} else {
			otherSum += o.TotalAmount
			otherCount++
		}
	}
	if electronicsCount == 0 || otherCount == 0 {
		return nil
	}
	electronicsAvg := electronicsSum / float64(electronicsCount)
	otherAvg := otherSum / float64(otherCount)
	if electronicsAvg < otherAvg {
		return []string{fmt.Sprintf("average electronics order total %.2f below non-electronics average %.2f",
			electronicsAvg, otherAvg)}
	}
	return nil
}

func (e *Engine) checkDiscountDistribution(ds *models.Dataset) []string {
	if len(ds.OrderItems) == 0 {
		return nil
	}
	counts := make(map[float64]int, len(e.cfg.Discounts))
	for _, item := range ds.OrderItems {
		counts[item.Discount]++
	}
	var warnings []string
	total := float64(len(ds.OrderItems))
	for _, band := range e.cfg.Discounts {
		observed := float64(counts[band.Value]) / total
		if math.Abs(observed-band.Weight) > discountFreqTolerance {
			warnings = append(warnings, fmt.Sprintf("discount %.2f frequency %.3f deviates from configured %.3f by more than %.2f",
				band.Value, observed, band.Weight, discountFreqTolerance))
		}
	}
	return warnings
}
