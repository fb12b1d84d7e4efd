package export

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"shopforge/internal/models"
)

// DB is the subset of pgxpool.Pool the loader needs; pgxmock satisfies
// it in tests.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresLoader creates the schema and bulk-loads a generated dataset
// into Postgres.
type PostgresLoader struct {
	db  DB
	log *logrus.Logger
}

// NewPostgresLoader creates a loader on the given connection pool.
func NewPostgresLoader(db DB, log *logrus.Logger) *PostgresLoader {
	return &PostgresLoader{db: db, log: log}
}

// CreateSchema executes the table and index DDL.
func (l *PostgresLoader) CreateSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := l.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	l.log.Info("database schema created")
	return nil
}

// Load bulk-inserts all five tables inside one transaction, in
// foreign-key order, using COPY.
func (l *PostgresLoader) Load(ctx context.Context, ds *models.Dataset) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tables := []struct {
		name    string
		columns []string
		rows    [][]any
	}{
		{"products", productColumns, productRows(ds.Products)},
		{"customers", customerColumns, customerRows(ds.Customers)},
		{"orders", orderColumns, orderRows(ds.Orders)},
		{"order_items", itemColumns, itemRows(ds.OrderItems)},
		{"reviews", reviewColumns, reviewRows(ds.Reviews)},
	}
	for _, t := range tables {
		copied, err := tx.CopyFrom(ctx, pgx.Identifier{t.name}, t.columns, pgx.CopyFromRows(t.rows))
		if err != nil {
			return fmt.Errorf("failed to copy into %s: %w", t.name, err)
		}
		if copied != int64(len(t.rows)) {
			return fmt.Errorf("copied %d rows into %s, expected %d", copied, t.name, len(t.rows))
		}
		l.log.WithFields(logrus.Fields{"table": t.name, "rows": copied}).Info("table loaded")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}
	return nil
}

// Orphan-count queries per foreign key relationship.
var integrityChecks = []struct {
	name  string
	query string
}{
	{"orders -> customers", `SELECT COUNT(*) FROM orders o LEFT JOIN customers c ON o.customer_id = c.customer_id WHERE c.customer_id IS NULL`},
	{"order_items -> orders", `SELECT COUNT(*) FROM order_items oi LEFT JOIN orders o ON oi.order_id = o.order_id WHERE o.order_id IS NULL`},
	{"order_items -> products", `SELECT COUNT(*) FROM order_items oi LEFT JOIN products p ON oi.product_id = p.product_id WHERE p.product_id IS NULL`},
	{"reviews -> products", `SELECT COUNT(*) FROM reviews r LEFT JOIN products p ON r.product_id = p.product_id WHERE p.product_id IS NULL`},
	{"reviews -> customers", `SELECT COUNT(*) FROM reviews r LEFT JOIN customers c ON r.customer_id = c.customer_id WHERE c.customer_id IS NULL`},
}

// VerifyIntegrity re-checks every foreign key relationship in the
// database after a load.
func (l *PostgresLoader) VerifyIntegrity(ctx context.Context) error {
	for _, check := range integrityChecks {
		var orphans int
		if err := l.db.QueryRow(ctx, check.query).Scan(&orphans); err != nil {
			return fmt.Errorf("integrity check %s failed: %w", check.name, err)
		}
		if orphans > 0 {
			return fmt.Errorf("integrity check %s found %d orphaned rows", check.name, orphans)
		}
	}
	l.log.Info("referential integrity verified")
	return nil
}

func productRows(products []models.Product) [][]any {
	rows := make([][]any, len(products))
	for i, p := range products {
		rows[i] = []any{p.ID, p.Name, p.Category, p.Subcategory, p.Price, p.Cost, p.StockQuantity, p.Supplier, p.CreatedDate}
	}
	return rows
}

func customerRows(customers []models.Customer) [][]any {
	rows := make([][]any, len(customers))
	for i, c := range customers {
		rows[i] = []any{c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, c.Country, c.RegistrationDate}
	}
	return rows
}

func orderRows(orders []models.Order) [][]any {
	rows := make([][]any, len(orders))
	for i, o := range orders {
		rows[i] = []any{o.ID, o.CustomerID, o.OrderDate, o.Status, o.PaymentMethod, o.ShippingAddress, o.ShippingCity, o.ShippingState, o.ShippingZip, o.ShippingCountry, o.TotalAmount}
	}
	return rows
}

func itemRows(items []models.OrderItem) [][]any {
	rows := make([][]any, len(items))
	for i, it := range items {
		rows[i] = []any{it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Discount, it.LineTotal}
	}
	return rows
}

func reviewRows(reviews []models.Review) [][]any {
	rows := make([][]any, len(reviews))
	for i, r := range reviews {
		rows[i] = []any{r.ID, r.ProductID, r.CustomerID, r.Rating, r.ReviewText, r.ReviewDate}
	}
	return rows
}
