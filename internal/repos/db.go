package repos

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") {
		// in-memory databases are per-connection
		db.SetMaxOpenConns(1)
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline accounts and catalog if DB is empty (idempotent)
	if err := seedUsers(db); err != nil {
		return nil, err
	}
	if err := seedProducts(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Now() string { return time.Now().UTC().Format(time.RFC3339) }

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('admin','agent','resident')),
  status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active','inactive')),
  apartment_json TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(LOWER(username));
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email    ON users(LOWER(email));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price INTEGER NOT NULL CHECK (price > 0),
  images_json TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active','inactive')),
  created_by TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_name       ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Orders (line items are an immutable JSON snapshot; one row = one atomic write)
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  items_json TEXT NOT NULL,
  total INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending'
    CHECK (status IN ('pending','processing','shipped','delivered','cancelled')),
  delivery_address TEXT NOT NULL,
  agent_id TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_user       ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_orders_status     ON orders(status);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
`
	_, err := db.Exec(schema)
	return err
}

// seedUsers ensures the bootstrap accounts exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Username, Email, Role, Hash, Apartment string
	}
	mk := func(id, username, email, role, raw string, apt map[string]string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		aj := ""
		if apt != nil {
			b, _ := json.Marshal(apt)
			aj = string(b)
		}
		return u{ID: id, Username: username, Email: email, Role: role, Hash: string(h), Apartment: aj}
	}

	users := []u{
		mk("user-admin", "admin", "admin@apartmart.com", "admin", "admin123", nil),
		mk("user-agent", "agent", "agent@apartmart.com", "agent", "agent123", nil),
		mk("user-demo", "demo", "demo@apartmart.com", "resident", "demo123",
			map[string]string{"tower": "A", "floor": "5", "flatNumber": "502"}),
		mk("user-john", "john", "john@example.com", "resident", "john123",
			map[string]string{"tower": "B", "floor": "3", "flatNumber": "301"}),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	now := Now()
	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,username,email,password_hash,role,status,apartment_json,created_at,updated_at)
			VALUES(?,?,?,?,?,'active',?,?,?)
			ON CONFLICT(username) DO NOTHING
		`, x.ID, x.Username, x.Email, x.Hash, x.Role, x.Apartment, now, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// seedProducts inserts the starter catalog if the table is empty.
func seedProducts(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting starter catalog")

	type p struct {
		ID, Name, Desc, Category string
		Price, Stock             int
		Images                   []string
	}
	items := []p{
		{"prod-1", "Unicorn Stationery Set", "Magical unicorn-themed pencil case with stickers and accessories", "Stationery", 899, 50, []string{"/images/unicorn-stationery-set.png"}},
		{"prod-2", "Executive Stationery Kit", "Complete office stationery kit for professionals", "Household Essentials", 1299, 30, []string{"/images/executive-kit.png"}},
		{"prod-3", "Premium Notebook Set", "High-quality notebooks with premium paper and binding", "Stationery", 499, 100, []string{"/images/notebook-blue.png"}},
		{"prod-4", "Paperlla Stationery Bundle", "Elegant stationery bundle with premium quality items", "Stationery", 799, 40, []string{"/images/paperlla-stationery.png"}},
		{"prod-5", "Office Essentials Kit", "Everything needed to set up a home office desk", "Household Essentials", 999, 25, []string{"/images/office-essentials.png"}},
		{"prod-6", "Bluetooth Speaker", "Compact wireless speaker with rich sound", "Electronics", 2499, 15, []string{"/images/bluetooth-speaker.png"}},
		{"prod-7", "Gel Pens Set", "Smooth-writing gel pens in assorted colors", "Stationery", 299, 200, []string{"/images/gel-pens.png"}},
		{"prod-8", "Desk Organizer", "Multi-compartment wooden desk organizer", "Household Essentials", 649, 35, []string{"/images/desk-organizer.png"}},
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	now := Now()
	for _, x := range items {
		ij, _ := json.Marshal(x.Images)
		if _, err := tx.Exec(`
			INSERT INTO products(id,name,description,price,images_json,category,stock,status,created_by,created_at,updated_at)
			VALUES(?,?,?,?,?,?,?,'active','',?,?)
		`, x.ID, x.Name, x.Desc, x.Price, string(ij), x.Category, x.Stock, now, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}
