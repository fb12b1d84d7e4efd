package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"shopforge/internal/models"
)

const dateFormat = "2006-01-02"

var (
	productColumns  = []string{"product_id", "name", "category", "subcategory", "price", "cost", "stock_quantity", "supplier", "created_date"}
	customerColumns = []string{"customer_id", "first_name", "last_name", "email", "phone", "address", "city", "state", "zip", "country", "registration_date"}
	orderColumns    = []string{"order_id", "customer_id", "order_date", "status", "payment_method", "shipping_address", "shipping_city", "shipping_state", "shipping_zip", "shipping_country", "total_amount"}
	itemColumns     = []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price", "discount", "line_total"}
	reviewColumns   = []string{"review_id", "product_id", "customer_id", "rating", "review_text", "review_date"}
)

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteCSV writes the five tables as CSV files under dir, one file per
// table, creating the directory if needed.
func WriteCSV(dir string, ds *models.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeTable(dir, "products", productColumns, len(ds.Products), func(i int) []string {
		p := ds.Products[i]
		return []string{
			strconv.Itoa(p.ID), p.Name, p.Category, p.Subcategory,
			money(p.Price), money(p.Cost), strconv.Itoa(p.StockQuantity),
			p.Supplier, p.CreatedDate.Format(dateFormat),
		}
	}); err != nil {
		return err
	}

	if err := writeTable(dir, "customers", customerColumns, len(ds.Customers), func(i int) []string {
		c := ds.Customers[i]
		return []string{
			strconv.Itoa(c.ID), c.FirstName, c.LastName, c.Email, c.Phone,
			c.Address, c.City, c.State, c.Zip, c.Country,
			c.RegistrationDate.Format(dateFormat),
		}
	}); err != nil {
		return err
	}

	if err := writeTable(dir, "orders", orderColumns, len(ds.Orders), func(i int) []string {
		o := ds.Orders[i]
		return []string{
			strconv.Itoa(o.ID), strconv.Itoa(o.CustomerID), o.OrderDate.Format(dateFormat),
			o.Status, o.PaymentMethod, o.ShippingAddress, o.ShippingCity,
			o.ShippingState, o.ShippingZip, o.ShippingCountry, money(o.TotalAmount),
		}
	}); err != nil {
		return err
	}

	if err := writeTable(dir, "order_items", itemColumns, len(ds.OrderItems), func(i int) []string {
		it := ds.OrderItems[i]
		return []string{
			strconv.Itoa(it.ID), strconv.Itoa(it.OrderID), strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity), money(it.UnitPrice),
			strconv.FormatFloat(it.Discount, 'f', -1, 64), money(it.LineTotal),
		}
	}); err != nil {
		return err
	}

	return writeTable(dir, "reviews", reviewColumns, len(ds.Reviews), func(i int) []string {
		r := ds.Reviews[i]
		return []string{
			strconv.Itoa(r.ID), strconv.Itoa(r.ProductID), strconv.Itoa(r.CustomerID),
			strconv.Itoa(r.Rating), r.ReviewText, r.ReviewDate.Format(dateFormat),
		}
	})
}

func writeTable(dir, name string, columns []string, rows int, row func(i int) []string) error {
	path := filepath.Join(dir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}

// ReadCSV loads a dataset previously written by WriteCSV.
func ReadCSV(dir string) (*models.Dataset, error) {
	ds := &models.Dataset{}

	if err := readTable(dir, "products", productColumns, func(rec []string) error {
		p := models.Product{Name: rec[1], Category: rec[2], Subcategory: rec[3], Supplier: rec[7]}
		var err error
		if p.ID, err = strconv.Atoi(rec[0]); err != nil {
			return err
		}
		if p.Price, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return err
		}
		if p.Cost, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return err
		}
		if p.StockQuantity, err = strconv.Atoi(rec[6]); err != nil {
			return err
		}
		if p.CreatedDate, err = time.Parse(dateFormat, rec[8]); err != nil {
			return err
		}
		ds.Products = append(ds.Products, p)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "customers", customerColumns, func(rec []string) error {
		c := models.Customer{
			FirstName: rec[1], LastName: rec[2], Email: rec[3], Phone: rec[4],
			Address: rec[5], City: rec[6], State: rec[7], Zip: rec[8], Country: rec[9],
		}
		var err error
		if c.ID, err = strconv.Atoi(rec[0]); err != nil {
			return err
		}
		if c.RegistrationDate, err = time.Parse(dateFormat, rec[10]); err != nil {
			return err
		}
		ds.Customers = append(ds.Customers, c)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "orders", orderColumns, func(rec []string) error {
		o := models.Order{
			Status: rec[3], PaymentMethod: rec[4], ShippingAddress: rec[5],
			ShippingCity: rec[6], ShippingState: rec[7], ShippingZip: rec[8], ShippingCountry: rec[9],
		}
		var err error
		if o.ID, err = strconv.Atoi(rec[0]); err != nil {
			return err
		}
		if o.CustomerID, err = strconv.Atoi(rec[1]); err != nil {
			return err
		}
		if o.OrderDate, err = time.Parse(dateFormat, rec[2]); err != nil {
			return err
		}
		if o.TotalAmount, err = strconv.ParseFloat(rec[10], 64); err != nil {
			return err
		}
		ds.Orders = append(ds.Orders, o)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "order_items", itemColumns, func(rec []string) error {
		it := models.OrderItem{}
		var err error
		if it.ID, err = strconv.Atoi(rec[0]); err != nil {
			return err
		}
		if it.OrderID, err = strconv.Atoi(rec[1]); err != nil {
			return err
		}
		if it.ProductID, err = strconv.Atoi(rec[2]); err != nil {
			return err
		}
		if it.Quantity, err = strconv.Atoi(rec[3]); err != nil {
			return err
		}
		if it.UnitPrice, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return err
		}
		if it.Discount, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return err
		}
		if it.LineTotal, err = strconv.ParseFloat(rec[6], 64); err != nil {
			return err
		}
		ds.OrderItems = append(ds.OrderItems, it)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "reviews", reviewColumns, func(rec []string) error {
		r := models.Review{ReviewText: rec[4]}
		var err error
		if r.ID, err = strconv.Atoi(rec[0]); err != nil {
			return err
		}
		if r.ProductID, err = strconv.Atoi(rec[1]); err != nil {
			return err
		}
		if r.CustomerID, err = strconv.Atoi(rec[2]); err != nil {
			return err
		}
		if r.Rating, err = strconv.Atoi(rec[3]); err != nil {
			return err
		}
		if r.ReviewDate, err = time.Parse(dateFormat, rec[5]); err != nil {
			return err
		}
		ds.Reviews = append(ds.Reviews, r)
		return nil
	}); err != nil {
		return nil, err
	}

	return ds, nil
}

func readTable(dir, name string, columns []string, row func(rec []string) error) error {
	path := filepath.Join(dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(columns)
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%s is empty, expected a header row", path)
	}
	for i, col := range columns {
		if records[0][i] != col {
			return fmt.Errorf("%s has unexpected header %q in column %d, expected %q",
				path, records[0][i], i+1, col)
		}
	}
	for i, rec := range records[1:] {
		if err := row(rec); err != nil {
			return fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
	}
	return nil
}
