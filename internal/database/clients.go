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

const clientColumns = `id, username, email, role, phone, full_name,
	driver_license, is_active, created_at`

func scanClient(row interface{ Scan(dest ...any) error }) (*models.Client, error) {
	var c models.Client
	var license sql.NullString
	err := row.Scan(
		&c.ID, &c.Username, &c.Email, &c.Role, &c.Phone, &c.FullName,
		&license, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if license.Valid {
		c.DriverLicense = &license.String
	}
	return &c, nil
}

// ListClients returns all clients ordered by id.
func (db *DB) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// GetClient returns one client by id.
func (db *DB) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	c, err := scanClient(db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// CreateClient inserts a client and returns the stored row.
func (db *DB) CreateClient(ctx context.Context, n models.NewClient) (*models.Client, error) {
	role := n.Role
	if role == "" {
		role = models.ClientRoleClient
	}
	result, err := db.ExecContext(ctx, `
		INSERT INTO clients (
			username, email, role, phone, full_name, driver_license, is_active, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.Username, n.Email, role, n.Phone, n.FullName, n.DriverLicense, n.IsActive, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return db.GetClient(ctx, id)
}

// UpdateClient applies the non-nil patch fields and returns the stored row.
func (db *DB) UpdateClient(ctx context.Context, id int64, patch models.ClientPatch) (*models.Client, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.Username != nil {
		set("username", *patch.Username)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Role != nil {
		set("role", *patch.Role)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.FullName != nil {
		set("full_name", *patch.FullName)
	}
	if patch.DriverLicense != nil {
		set("driver_license", *patch.DriverLicense)
	}
	if patch.IsActive != nil {
		set("is_active", *patch.IsActive)
	}

	if len(sets) == 0 {
		return db.GetClient(ctx, id)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE clients SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetClient(ctx, id)
}

// DeleteClient removes a client and returns the row it removed.
func (db *DB) DeleteClient(ctx context.Context, id int64) (*models.Client, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := scanClient(tx.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete client: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return c, nil
}
