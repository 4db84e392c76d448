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

const hijackingColumns = `id, description, closed, user_id, car_id, created_at`

func scanHijacking(row interface{ Scan(dest ...any) error }) (*models.Hijacking, error) {
	var h models.Hijacking
	err := row.Scan(&h.ID, &h.Description, &h.Closed, &h.UserID, &h.CarID, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListHijackings returns all incidents ordered by creation time.
func (db *DB) ListHijackings(ctx context.Context) ([]models.Hijacking, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+hijackingColumns+` FROM hijacking ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list hijackings: %w", err)
	}
	defer rows.Close()

	var incidents []models.Hijacking
	for rows.Next() {
		h, err := scanHijacking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hijacking: %w", err)
		}
		incidents = append(incidents, *h)
	}
	return incidents, rows.Err()
}

// GetHijacking returns one incident by id.
func (db *DB) GetHijacking(ctx context.Context, id int64) (*models.Hijacking, error) {
	h, err := scanHijacking(db.QueryRowContext(ctx,
		`SELECT `+hijackingColumns+` FROM hijacking WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hijacking: %w", err)
	}
	return h, nil
}

// CreateHijacking inserts an incident and returns the stored row.
func (db *DB) CreateHijacking(ctx context.Context, n models.NewHijacking) (*models.Hijacking, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO hijacking (description, closed, user_id, car_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		n.Description, n.Closed, n.UserID, n.CarID, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert hijacking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return db.GetHijacking(ctx, id)
}

// UpdateHijacking applies the non-nil patch fields and returns the stored row.
func (db *DB) UpdateHijacking(ctx context.Context, id int64, patch models.HijackingPatch) (*models.Hijacking, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Closed != nil {
		set("closed", *patch.Closed)
	}
	if patch.UserID != nil {
		set("user_id", *patch.UserID)
	}
	if patch.CarID != nil {
		set("car_id", *patch.CarID)
	}

	if len(sets) == 0 {
		return db.GetHijacking(ctx, id)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE hijacking SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update hijacking: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetHijacking(ctx, id)
}

// DeleteHijacking removes an incident and returns the row it removed.
func (db *DB) DeleteHijacking(ctx context.Context, id int64) (*models.Hijacking, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	h, err := scanHijacking(tx.QueryRowContext(ctx,
		`SELECT `+hijackingColumns+` FROM hijacking WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hijacking: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM hijacking WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete hijacking: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return h, nil
}
