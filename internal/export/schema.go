package export

// Table DDL in foreign-key order, one statement per entry so failures
// point at a specific table.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		product_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		subcategory TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		cost NUMERIC(10,2) NOT NULL,
		stock_quantity INTEGER NOT NULL,
		supplier TEXT NOT NULL,
		created_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zip TEXT NOT NULL,
		country TEXT NOT NULL,
		registration_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id INTEGER PRIMARY KEY,
		customer_id INTEGER NOT NULL REFERENCES customers(customer_id),
		order_date DATE NOT NULL,
		status TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		shipping_address TEXT NOT NULL,
		shipping_city TEXT NOT NULL,
		shipping_state TEXT NOT NULL,
		shipping_zip TEXT NOT NULL,
		shipping_country TEXT NOT NULL,
		total_amount NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_item_id INTEGER PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(order_id),
		product_id INTEGER NOT NULL REFERENCES products(product_id),
		quantity INTEGER NOT NULL,
		unit_price NUMERIC(10,2) NOT NULL,
		discount NUMERIC(4,2) NOT NULL,
		line_total NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		review_id INTEGER PRIMARY KEY,
		product_id INTEGER NOT NULL REFERENCES products(product_id),
		customer_id INTEGER NOT NULL REFERENCES customers(customer_id),
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		review_text TEXT NOT NULL,
		review_date DATE NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id)`,
}
