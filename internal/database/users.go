package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carshare/internal/models"
)

const userColumns = `id, username, email, password_hash`

// CountUsers reports how many operator accounts exist.
func (db *DB) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// GetUserByEmail returns the operator account for an email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// CreateUser inserts an operator account and returns it with its id set.
func (db *DB) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
		username, email, passwordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return &models.User{ID: id, Username: username, Email: email, PasswordHash: passwordHash}, nil
}
