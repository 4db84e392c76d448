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

const maintenanceColumns = `id, car_id, description, cost, date, mileage, created_at`

func scanMaintenance(row interface{ Scan(dest ...any) error }) (*models.Maintenance, error) {
	var m models.Maintenance
	err := row.Scan(&m.ID, &m.CarID, &m.Description, &m.Cost, &m.Date, &m.Mileage, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMaintenance returns all maintenance records ordered by id.
func (db *DB) ListMaintenance(ctx context.Context) ([]models.Maintenance, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+maintenanceColumns+` FROM maintenance ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list maintenance: %w", err)
	}
	defer rows.Close()

	var records []models.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		records = append(records, *m)
	}
	return records, rows.Err()
}

// GetMaintenance returns one maintenance record by id.
func (db *DB) GetMaintenance(ctx context.Context, id int64) (*models.Maintenance, error) {
	m, err := scanMaintenance(db.QueryRowContext(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get maintenance: %w", err)
	}
	return m, nil
}

// CreateMaintenance inserts a maintenance record and returns the stored row.
func (db *DB) CreateMaintenance(ctx context.Context, n models.NewMaintenance) (*models.Maintenance, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO maintenance (car_id, description, cost, date, mileage, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.CarID, n.Description, n.Cost, n.Date, n.Mileage, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert maintenance: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return db.GetMaintenance(ctx, id)
}

// UpdateMaintenance applies the non-nil patch fields and returns the stored row.
func (db *DB) UpdateMaintenance(ctx context.Context, id int64, patch models.MaintenancePatch) (*models.Maintenance, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.CarID != nil {
		set("car_id", *patch.CarID)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Cost != nil {
		set("cost", *patch.Cost)
	}
	if patch.Date != nil {
		set("date", *patch.Date)
	}
	if patch.Mileage != nil {
		set("mileage", *patch.Mileage)
	}

	if len(sets) == 0 {
		return db.GetMaintenance(ctx, id)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE maintenance SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update maintenance: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetMaintenance(ctx, id)
}

// DeleteMaintenance removes a maintenance record and returns the row it removed.
func (db *DB) DeleteMaintenance(ctx context.Context, id int64) (*models.Maintenance, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	m, err := scanMaintenance(tx.QueryRowContext(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get maintenance: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM maintenance WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete maintenance: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return m, nil
}
