package database

import (
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// InitSchema creates the catalog tables if they don't exist
func InitSchema(db *sql.DB) error {
	log.Info("Initializing scan-service database schema...")

	productsTableSQL := `
	CREATE TABLE IF NOT EXISTS products(
		id VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		brand VARCHAR(255),
		image_url VARCHAR(512),
		is_beverage BOOL NOT NULL DEFAULT false,
		serving_size DOUBLE NOT NULL DEFAULT 0,
		sugar DOUBLE NOT NULL DEFAULT 0,
		salt DOUBLE NOT NULL DEFAULT 0,
		sat_fat DOUBLE NOT NULL DEFAULT 0,
		protein DOUBLE NOT NULL DEFAULT 0,
		ingredients JSON,
		PRIMARY KEY (id)
	)`

	if _, err := db.Exec(productsTableSQL); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	log.Info("Products table created/verified")

	alertsTableSQL := `
	CREATE TABLE IF NOT EXISTS product_alerts(
		product_id VARCHAR(64) NOT NULL,
		position INT NOT NULL DEFAULT 0,
		alert VARCHAR(512) NOT NULL,
		INDEX product_id_index (product_id)
	)`

	if _, err := db.Exec(alertsTableSQL); err != nil {
		return fmt.Errorf("failed to create product_alerts table: %w", err)
	}
	log.Info("Product alerts table created/verified")

	return nil
}
