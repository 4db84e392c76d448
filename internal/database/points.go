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

const pointColumns = `id, address, full_address, latitude, longitude, created_at`

func scanPoint(row interface{ Scan(dest ...any) error }) (*models.Point, error) {
	var p models.Point
	err := row.Scan(&p.ID, &p.Address, &p.FullAddress, &p.Latitude, &p.Longitude, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPoints returns all branch points ordered by id.
func (db *DB) ListPoints(ctx context.Context) ([]models.Point, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+pointColumns+` FROM points ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list points: %w", err)
	}
	defer rows.Close()

	var points []models.Point
	for rows.Next() {
		p, err := scanPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		points = append(points, *p)
	}
	return points, rows.Err()
}

// GetPoint returns one branch point by id.
func (db *DB) GetPoint(ctx context.Context, id int64) (*models.Point, error) {
	p, err := scanPoint(db.QueryRowContext(ctx,
		`SELECT `+pointColumns+` FROM points WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get point: %w", err)
	}
	return p, nil
}

// CreatePoint inserts a branch point and returns the stored row.
func (db *DB) CreatePoint(ctx context.Context, n models.NewPoint) (*models.Point, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO points (address, full_address, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		n.Address, n.FullAddress, n.Latitude, n.Longitude, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert point: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return db.GetPoint(ctx, id)
}

// UpdatePoint applies the non-nil patch fields and returns the stored row.
func (db *DB) UpdatePoint(ctx context.Context, id int64, patch models.PointPatch) (*models.Point, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.Address != nil {
		set("address", *patch.Address)
	}
	if patch.FullAddress != nil {
		set("full_address", *patch.FullAddress)
	}
	if patch.Latitude != nil {
		set("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		set("longitude", *patch.Longitude)
	}

	if len(sets) == 0 {
		return db.GetPoint(ctx, id)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE points SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update point: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetPoint(ctx, id)
}

// DeletePoint removes a branch point and returns the row it removed.
func (db *DB) DeletePoint(ctx context.Context, id int64) (*models.Point, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := scanPoint(tx.QueryRowContext(ctx,
		`SELECT `+pointColumns+` FROM points WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get point: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM points WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete point: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}
