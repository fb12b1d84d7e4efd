package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopforge/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func sampleDataset() *models.Dataset {
	return &models.Dataset{
		Products: []models.Product{
			{ID: 1, Name: "Ergonomic Digital Interface", Category: "Electronics", Subcategory: "Audio",
				Price: 199.99, Cost: 129.99, StockQuantity: 55, Supplier: "Klein Group", CreatedDate: day(2022, 3, 14)},
			{ID: 2, Name: "Rustic Wooden Chair", Category: "Home & Garden", Subcategory: "Furniture",
				Price: 89.50, Cost: 58.17, StockQuantity: 12, Supplier: "Ortiz-Ward Labs", CreatedDate: day(2023, 11, 2)},
		},
		Customers: []models.Customer{
			{ID: 1, FirstName: "Dana", LastName: "Reyes", Email: "dana.reyes@example.com", Phone: "555-201-3344",
				Address: "742 Maple Ave", City: "Austin", State: "TX", Zip: "73301", Country: "USA",
				RegistrationDate: day(2023, 4, 1)},
		},
		Orders: []models.Order{
			{ID: 1, CustomerID: 1, OrderDate: day(2023, 8, 20), Status: "Completed", PaymentMethod: "PayPal",
				ShippingAddress: "742 Maple Ave", ShippingCity: "Austin", ShippingState: "TX",
				ShippingZip: "73301", ShippingCountry: "USA", TotalAmount: 379.97},
		},
		OrderItems: []models.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 1, UnitPrice: 199.99, Discount: 0, LineTotal: 199.99},
			{ID: 2, OrderID: 1, ProductID: 2, Quantity: 2, UnitPrice: 89.99, Discount: 0.1, LineTotal: 161.98},
		},
		Reviews: []models.Review{
			{ID: 1, ProductID: 1, CustomerID: 1, Rating: 5,
				ReviewText: "Battery life and build quality are top-notch.", ReviewDate: day(2023, 9, 5)},
		},
	}
}

func TestWriteCSVCreatesAllTables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(dir, sampleDataset()))

	for _, name := range []string{"products", "customers", "orders", "order_items", "reviews"} {
		_, err := os.Stat(filepath.Join(dir, name+".csv"))
		assert.NoError(t, err, "missing %s.csv", name)
	}
}

func TestWriteCSVHeaderAndRowCounts(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()
	require.NoError(t, WriteCSV(dir, ds))

	raw, err := os.ReadFile(filepath.Join(dir, "order_items.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, len(ds.OrderItems)+1)
	assert.Equal(t, strings.Join(itemColumns, ","), lines[0])
}

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()
	require.NoError(t, WriteCSV(dir, ds))

	got, err := ReadCSV(dir)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestWriteCSVCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, WriteCSV(dir, sampleDataset()))
	_, err := os.Stat(filepath.Join(dir, "products.csv"))
	assert.NoError(t, err)
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products.csv")
}

func TestReadCSVRejectsWrongHeader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(dir, sampleDataset()))

	// Same arity, swapped columns: the data would load into the wrong
	// fields if only the field count were checked.
	path := filepath.Join(dir, "order_items.csv")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	swapped := strings.Replace(string(raw), "quantity,unit_price", "unit_price,quantity", 1)
	require.NoError(t, os.WriteFile(path, []byte(swapped), 0o644))

	_, err = ReadCSV(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected header")
}

func TestReadCSVRejectsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(dir, sampleDataset()))

	path := filepath.Join(dir, "reviews.csv")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	corrupted := strings.Replace(string(raw), ",5,", ",five,", 1)
	require.NoError(t, os.WriteFile(path, []byte(corrupted), 0o644))

	_, err = ReadCSV(dir)
	assert.Error(t, err)
}
