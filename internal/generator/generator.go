package generator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shopforge/internal/config"
	"shopforge/internal/identity"
	"shopforge/internal/models"
	"shopforge/internal/sampling"
	"shopforge/internal/validation"
)

// Result carries the generated tables, the whale cohort, and any
// advisory validation warnings.
type Result struct {
	RunID    uuid.UUID
	Dataset  *models.Dataset
	WhaleIDs map[int]bool
	Warnings []string
}

// Runner wires the generation stages together in dependency order and
// refuses to hand the dataset off if any hard validation check fails.
type Runner struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewRunner creates a Runner for one configuration.
func NewRunner(cfg *config.Config, log *logrus.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run executes the full pipeline: products, customers, whale
// selection, orders, order items with count balancing, reviews, then
// validation. Identical seed and configuration reproduce identical
// tables.
func (r *Runner) Run() (*Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	runID := uuid.New()
	src := sampling.New(r.cfg.Seed)
	ident := identity.NewProvider(src)

	catalog, err := NewCatalog(r.cfg)
	if err != nil {
		return nil, err
	}

	log := r.log.WithFields(logrus.Fields{"run_id": runID, "seed": r.cfg.Seed})

	log.Info("generating products")
	products := NewProductGenerator(r.cfg, catalog, src, ident).Generate()

	log.Info("generating customers")
	customers := NewCustomerGenerator(r.cfg, src, ident).Generate()

	whales, err := SelectWhales(src, customers, r.cfg.Whales.Share)
	if err != nil {
		return nil, fmt.Errorf("failed to select whale cohort: %w", err)
	}
	log.WithField("whales", len(whales)).Info("selected whale cohort")

	log.Info("generating orders")
	orderGen, err := NewOrderGenerator(r.cfg, src, ident, whales)
	if err != nil {
		return nil, err
	}
	orders, err := orderGen.Generate(customers)
	if err != nil {
		return nil, fmt.Errorf("failed to generate orders: %w", err)
	}

	log.Info("generating order items")
	items, err := NewOrderItemGenerator(r.cfg, catalog, src, whales).Generate(orders, products)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order items: %w", err)
	}

	log.Info("generating reviews")
	reviews, err := NewReviewGenerator(r.cfg, src).Generate(orders, items, products)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reviews: %w", err)
	}

	dataset := &models.Dataset{
		Products:   products,
		Customers:  customers,
		Orders:     orders,
		OrderItems: items,
		Reviews:    reviews,
	}

	log.Info("running dataset validation")
	warnings, err := validation.NewEngine(r.cfg, r.log).Validate(dataset, whales)
	if err != nil {
		return nil, fmt.Errorf("dataset rejected: %w", err)
	}

	log.WithField("warnings", len(warnings)).Info("generation complete")
	return &Result{RunID: runID, Dataset: dataset, WhaleIDs: whales, Warnings: warnings}, nil
}
