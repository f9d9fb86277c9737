package db

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []struct {
	table string
	ddl   string
}{
	{"facilities", `
CREATE TABLE IF NOT EXISTS facilities (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	name VARCHAR(191) NOT NULL,
	city VARCHAR(120) NULL,
	country VARCHAR(120) NULL,
	status VARCHAR(16) NOT NULL DEFAULT 'active',
	image_url VARCHAR(512) NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"rooms", `
CREATE TABLE IF NOT EXISTS rooms (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	facility_id VARCHAR(64) NOT NULL,
	name VARCHAR(191) NOT NULL,
	type VARCHAR(64) NULL,
	capacity INT NULL,
	price DECIMAL(12,2) NULL,
	status VARCHAR(16) NOT NULL DEFAULT 'active',
	KEY idx_rooms_facility (facility_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"reservations", `
CREATE TABLE IF NOT EXISTS reservations (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	facility_id VARCHAR(64) NOT NULL,
	room_id VARCHAR(64) NOT NULL,
	guest_name VARCHAR(191) NOT NULL,
	check_in DATE NOT NULL,
	check_out DATE NOT NULL,
	status VARCHAR(16) NOT NULL,
	adult_count INT NULL,
	child_count INT NULL,
	total_price DECIMAL(12,2) NULL,
	source VARCHAR(64) NULL,
	KEY idx_reservations_stay (check_in, check_out),
	KEY idx_reservations_facility (facility_id, room_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(191) NOT NULL,
	role VARCHAR(16) NOT NULL,
	status VARCHAR(16) NOT NULL DEFAULT 'active',
	password_hash VARCHAR(255) NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	UNIQUE KEY uq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// EnsureSchema creates any missing table. Existing tables are left alone.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", s.table, err)
		}
	}
	return nil
}
