package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"carshare/internal/models"
)

const carColumns = `id, license_plate, brand, model, year, color, category,
	daily_price, is_available, current_mileage, status, location, created_at`

func scanCar(row interface{ Scan(dest ...any) error }) (*models.Car, error) {
	var c models.Car
	err := row.Scan(
		&c.ID, &c.LicensePlate, &c.Brand, &c.Model, &c.Year, &c.Color, &c.Category,
		&c.DailyPrice, &c.IsAvailable, &c.CurrentMileage, &c.Status, &c.Location, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCars returns all cars ordered by id.
func (db *DB) ListCars(ctx context.Context) ([]models.Car, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+carColumns+` FROM cars ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, *c)
	}
	return cars, rows.Err()
}

// GetCar returns one car by id.
func (db *DB) GetCar(ctx context.Context, id int64) (*models.Car, error) {
	c, err := scanCar(db.QueryRowContext(ctx,
		`SELECT `+carColumns+` FROM cars WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}
	return c, nil
}

// CreateCar inserts a car and returns the stored row.
func (db *DB) CreateCar(ctx context.Context, n models.NewCar) (*models.Car, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO cars (
			license_plate, brand, model, year, color, category,
			daily_price, is_available, current_mileage, status, location, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.LicensePlate, n.Brand, n.Model, n.Year, n.Color, n.Category,
		n.DailyPrice, n.IsAvailable, n.CurrentMileage, n.Status, n.Location, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert car: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return db.GetCar(ctx, id)
}

// UpdateCar applies the non-nil patch fields and returns the stored row.
func (db *DB) UpdateCar(ctx context.Context, id int64, patch models.CarPatch) (*models.Car, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.LicensePlate != nil {
		set("license_plate", *patch.LicensePlate)
	}
	if patch.Brand != nil {
		set("brand", *patch.Brand)
	}
	if patch.Model != nil {
		set("model", *patch.Model)
	}
	if patch.Year != nil {
		set("year", *patch.Year)
	}
	if patch.Color != nil {
		set("color", *patch.Color)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.DailyPrice != nil {
		set("daily_price", *patch.DailyPrice)
	}
	if patch.IsAvailable != nil {
		set("is_available", *patch.IsAvailable)
	}
	if patch.CurrentMileage != nil {
		set("current_mileage", *patch.CurrentMileage)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}

	if len(sets) == 0 {
		return db.GetCar(ctx, id)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE cars SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetCar(ctx, id)
}

// DeleteCar removes a car and returns the row it removed.
func (db *DB) DeleteCar(ctx context.Context, id int64) (*models.Car, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := scanCar(tx.QueryRowContext(ctx,
		`SELECT `+carColumns+` FROM cars WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cars WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete car: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return c, nil
}
