package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DB is the subset of pgxpool.Pool the runner needs; pgxmock satisfies
// it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Query is one named analytics statement.
type Query struct {
	Name string
	SQL  string
}

// DefaultQueries is the standard analytics set run against a loaded
// dataset.
var DefaultQueries = []Query{
	{
		Name: "revenue_by_category",
		SQL: `SELECT p.category, ROUND(SUM(oi.line_total), 2) AS revenue, COUNT(*) AS items_sold
FROM order_items oi
JOIN products p ON p.product_id = oi.product_id
GROUP BY p.category
ORDER BY revenue DESC`,
	},
	{
		Name: "top_customers_by_spend",
		SQL: `SELECT c.customer_id, c.first_name, c.last_name, ROUND(SUM(o.total_amount), 2) AS total_spend, COUNT(*) AS orders
FROM orders o
JOIN customers c ON c.customer_id = o.customer_id
GROUP BY c.customer_id, c.first_name, c.last_name
ORDER BY total_spend DESC
LIMIT 10`,
	},
	{
		Name: "monthly_revenue_trend",
		SQL: `SELECT TO_CHAR(o.order_date, 'YYYY-MM') AS month, ROUND(SUM(o.total_amount), 2) AS revenue, COUNT(*) AS orders
FROM orders o
GROUP BY month
ORDER BY month`,
	},
	{
		Name: "discount_distribution",
		SQL: `SELECT discount, COUNT(*) AS items, ROUND(COUNT(*)::numeric / SUM(COUNT(*)) OVER (), 4) AS share
FROM order_items
GROUP BY discount
ORDER BY discount`,
	},
	{
		Name: "average_rating_by_category",
		SQL: `SELECT p.category, ROUND(AVG(r.rating), 2) AS avg_rating, COUNT(*) AS reviews
FROM reviews r
JOIN products p ON p.product_id = r.product_id
GROUP BY p.category
ORDER BY avg_rating DESC`,
	},
}

// Runner executes the analytics queries and renders aligned text
// tables.
type Runner struct {
	db      DB
	queries []Query
	log     *logrus.Logger
}

// NewRunner creates a Runner over the given query set.
func NewRunner(db DB, queries []Query, log *logrus.Logger) *Runner {
	return &Runner{db: db, queries: queries, log: log}
}

// Run executes every query in order and returns the combined report
// text.
func (r *Runner) Run(ctx context.Context) (string, error) {
	var b strings.Builder
	for _, q := range r.queries {
		r.log.WithField("query", q.Name).Info("running analytics query")
		columns, rows, err := r.execute(ctx, q.SQL)
		if err != nil {
			return "", fmt.Errorf("query %s failed: %w", q.Name, err)
		}
		b.WriteString("## " + q.Name + "\n")
		b.WriteString(FormatTable(columns, rows))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (r *Runner) execute(ctx context.Context, sql string) ([]string, [][]any, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	var data [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		data = append(data, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return columns, data, nil
}

// FormatTable renders rows as a simple table with aligned columns.
func FormatTable(columns []string, rows [][]any) string {
	if len(rows) == 0 {
		return "No rows returned.\n"
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	cells := make([][]string, len(rows))
	for ri, row := range rows {
		cells[ri] = make([]string, len(row))
		for ci, value := range row {
			cells[ri][ci] = formatValue(value)
			if len(cells[ri][ci]) > widths[ci] {
				widths[ci] = len(cells[ri][ci])
			}
		}
	}

	last := len(columns) - 1
	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteString(" | ")
		}
		if i == last {
			b.WriteString(col)
		} else {
			b.WriteString(pad(col, widths[i]))
		}
	}
	b.WriteString("\n")
	for i := range columns {
		if i > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", widths[i]))
	}
	b.WriteString("\n")
	for _, row := range cells {
		for i, cell := range row {
			if i > 0 {
				b.WriteString(" | ")
			}
			if i == last {
				b.WriteString(cell)
			} else {
				b.WriteString(pad(cell, widths[i]))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case float64:
		return fmt.Sprintf("%.2f", v)
	case float32:
		return fmt.Sprintf("%.2f", v)
	case decimal.Decimal:
		return v.StringFixed(2)
	case pgtype.Numeric:
		f, err := v.Float64Value()
		if err != nil || !f.Valid {
			return "-"
		}
		return fmt.Sprintf("%.2f", f.Float64)
	default:
		return fmt.Sprint(v)
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
