package migrations

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Dates and times are kept as text in the layouts the API accepts, so they
// round-trip without timezone conversion.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL,
		password VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NULL,
		phone VARCHAR(50) NULL,
		profile_image TEXT NULL,
		is_vendor BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL,
		UNIQUE KEY users_username_uq (username),
		UNIQUE KEY users_email_uq (email)
	)`,
	`CREATE TABLE IF NOT EXISTS vendors (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		business_name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		category VARCHAR(50) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL,
		website TEXT NULL,
		address TEXT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		zip_code VARCHAR(20) NULL,
		profile_image TEXT NULL,
		cover_image TEXT NULL,
		gallery JSON NULL,
		services JSON NULL,
		featured_event VARCHAR(100) NULL,
		rating DOUBLE NOT NULL DEFAULT 0,
		review_count INT NOT NULL DEFAULT 0,
		rating_total BIGINT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		UNIQUE KEY vendors_user_id_uq (user_id),
		KEY vendors_category_idx (category),
		KEY vendors_rating_idx (rating),
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS event_requests (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		vendor_id BIGINT UNSIGNED NOT NULL,
		event_type VARCHAR(50) NOT NULL,
		event_date VARCHAR(10) NOT NULL,
		guest_count INT NOT NULL,
		start_time VARCHAR(5) NOT NULL,
		duration INT NOT NULL,
		budget INT NULL,
		additional_details TEXT NULL,
		status VARCHAR(20) NOT NULL,
		created_at DATETIME NOT NULL,
		KEY event_requests_user_idx (user_id),
		KEY event_requests_vendor_idx (vendor_id),
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (vendor_id) REFERENCES vendors(id)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		vendor_id BIGINT UNSIGNED NOT NULL,
		rating INT NOT NULL,
		comment TEXT NULL,
		event_type VARCHAR(50) NULL,
		event_date VARCHAR(10) NULL,
		created_at DATETIME NOT NULL,
		KEY reviews_user_idx (user_id),
		KEY reviews_vendor_idx (vendor_id),
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (vendor_id) REFERENCES vendors(id)
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(100) NOT NULL,
		password VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NULL,
		phone VARCHAR(50) NULL,
		profile_image TEXT NULL,
		is_vendor BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_uq ON users (LOWER(username))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_uq ON users (LOWER(email))`,
	`CREATE TABLE IF NOT EXISTS vendors (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id),
		business_name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		category VARCHAR(50) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL,
		website TEXT NULL,
		address TEXT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		zip_code VARCHAR(20) NULL,
		profile_image TEXT NULL,
		cover_image TEXT NULL,
		gallery TEXT NULL,
		services TEXT NULL,
		featured_event VARCHAR(100) NULL,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count INT NOT NULL DEFAULT 0,
		rating_total BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS vendors_category_idx ON vendors (category)`,
	`CREATE INDEX IF NOT EXISTS vendors_rating_idx ON vendors (rating DESC, id)`,
	`CREATE TABLE IF NOT EXISTS event_requests (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		vendor_id BIGINT NOT NULL REFERENCES vendors(id),
		event_type VARCHAR(50) NOT NULL,
		event_date VARCHAR(10) NOT NULL,
		guest_count INT NOT NULL,
		start_time VARCHAR(5) NOT NULL,
		duration INT NOT NULL,
		budget INT NULL,
		additional_details TEXT NULL,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS event_requests_user_idx ON event_requests (user_id)`,
	`CREATE INDEX IF NOT EXISTS event_requests_vendor_idx ON event_requests (vendor_id)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		vendor_id BIGINT NOT NULL REFERENCES vendors(id),
		rating INT NOT NULL,
		comment TEXT NULL,
		event_type VARCHAR(50) NULL,
		event_date VARCHAR(10) NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS reviews_user_idx ON reviews (user_id)`,
	`CREATE INDEX IF NOT EXISTS reviews_vendor_idx ON reviews (vendor_id)`,
}

// AutoMigrate creates the marketplace tables when they do not exist. Each
// statement is retried to ride out a database that is still starting.
func AutoMigrate(db *sqlx.DB, driver string, retries int) error {
	schema := mysqlSchema
	if driver == "postgres" {
		schema = postgresSchema
	}

	for _, query := range schema {
		_, err := db.Exec(query)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
		}
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
