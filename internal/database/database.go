package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/rs/zerolog"
)

// DB represents the record store connection.
type DB struct {
	*sql.DB
	path   string
	logger *zerolog.Logger
}

var (
	ErrNotFound         = errors.New("record not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// New initializes the database connection and creates tables if they don't exist.
func New(path string, logger *zerolog.Logger) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL mode and busy timeout keep interactive writes from tripping over the poller.
	dsn := path + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000&_foreign_keys=on"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	instance := &DB{
		DB:     db,
		path:   path,
		logger: logger,
	}

	if err := instance.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	logger.Info().Str("path", path).Msg("Database initialized")
	return instance, nil
}

func (db *DB) createTables() error {
	queries := []string{
		// Операторы бэк-офиса
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL
		)`,
		// Клиенты
		`CREATE TABLE IF NOT EXISTS clients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			role TEXT NOT NULL DEFAULT 'client',
			phone TEXT NOT NULL,
			full_name TEXT NOT NULL,
			driver_license TEXT,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		// Автомобили
		`CREATE TABLE IF NOT EXISTS cars (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			license_plate TEXT UNIQUE NOT NULL,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			year INTEGER NOT NULL,
			color TEXT NOT NULL,
			category TEXT NOT NULL,
			daily_price REAL NOT NULL,
			is_available BOOLEAN NOT NULL DEFAULT 1,
			current_mileage REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'available',
			location TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		// Бронирования
		`CREATE TABLE IF NOT EXISTS bookings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			car_id INTEGER NOT NULL,
			start_date DATETIME NOT NULL,
			end_date DATETIME NOT NULL,
			total_days INTEGER NOT NULL,
			total_price REAL NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			pickup_location TEXT NOT NULL,
			payment_status TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES clients(id),
			FOREIGN KEY(car_id) REFERENCES cars(id)
		)`,
		// Обслуживание
		`CREATE TABLE IF NOT EXISTS maintenance (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			car_id INTEGER NOT NULL,
			description TEXT NOT NULL,
			cost REAL NOT NULL DEFAULT 0,
			date DATETIME NOT NULL,
			mileage REAL NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(car_id) REFERENCES cars(id)
		)`,
		// Платежи
		`CREATE TABLE IF NOT EXISTS payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			booking_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			amount REAL NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			transaction_id TEXT UNIQUE,
			card_last_digits TEXT,
			payment_date DATETIME,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(booking_id) REFERENCES bookings(id),
			FOREIGN KEY(user_id) REFERENCES users(id)
		)`,
		// Резервные копии
		`CREATE TABLE IF NOT EXISTS backups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			file_size INTEGER NOT NULL DEFAULT 0,
			save_folder TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		// Пункты выдачи
		`CREATE TABLE IF NOT EXISTS points (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			address TEXT NOT NULL,
			full_address TEXT NOT NULL,
			latitude TEXT NOT NULL,
			longitude TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		// Угоны и ДТП
		`CREATE TABLE IF NOT EXISTS hijacking (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			closed BOOLEAN NOT NULL DEFAULT 0,
			user_id INTEGER NOT NULL,
			car_id INTEGER NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES clients(id),
			FOREIGN KEY(car_id) REFERENCES cars(id)
		)`,
		// Комментарии о клиентах
		`CREATE TABLE IF NOT EXISTS comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			comment TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES clients(id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_clients_email ON clients(email)`,
		`CREATE INDEX IF NOT EXISTS idx_clients_is_active ON clients(is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_status ON cars(status)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_category ON cars(category)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_car_id ON bookings(car_id)`,
		`CREATE INDEX IF NOT EXISTS idx_maintenance_car_id ON maintenance(car_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_booking_id ON payments(booking_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_hijacking_closed ON hijacking(closed)`,
		`CREATE INDEX IF NOT EXISTS idx_hijacking_car_id ON hijacking(car_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_user_id ON comments(user_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %v", query, err)
		}
	}
	return nil
}

// Path returns the location of the database file on disk.
func (db *DB) Path() string {
	return db.path
}

func (db *DB) Close() error {
	return db.DB.Close()
}
