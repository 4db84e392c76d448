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

const backupColumns = `id, file_size, save_folder, created_at`

func scanBackup(row interface{ Scan(dest ...any) error }) (*models.Backup, error) {
	var b models.Backup
	err := row.Scan(&b.ID, &b.FileSize, &b.SaveFolder, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBackups returns all recorded backup runs ordered by creation time.
func (db *DB) ListBackups(ctx context.Context) ([]models.Backup, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+backupColumns+` FROM backups ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	defer rows.Close()

	var backups []models.Backup
	for rows.Next() {
		b, err := scanBackup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan backup: %w", err)
		}
		backups = append(backups, *b)
	}
	return backups, rows.Err()
}

// GetBackup returns one backup record by id.
func (db *DB) GetBackup(ctx context.Context, id int64) (*models.Backup, error) {
	b, err := scanBackup(db.QueryRowContext(ctx,
		`SELECT `+backupColumns+` FROM backups WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get backup: %w", err)
	}
	return b, nil
}

// CreateBackup records a backup run and returns the stored row.
func (db *DB) CreateBackup(ctx context.Context, n models.NewBackup) (*models.Backup, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO backups (file_size, save_folder, created_at) VALUES (?, ?, ?)`,
		n.FileSize, n.SaveFolder, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert backup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return db.GetBackup(ctx, id)
}

// UpdateBackup applies the non-nil patch fields and returns the stored row.
func (db *DB) UpdateBackup(ctx context.Context, id int64, patch models.BackupPatch) (*models.Backup, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.FileSize != nil {
		set("file_size", *patch.FileSize)
	}
	if patch.SaveFolder != nil {
		set("save_folder", *patch.SaveFolder)
	}

	if len(sets) == 0 {
		return db.GetBackup(ctx, id)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE backups SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update backup: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetBackup(ctx, id)
}

// DeleteBackup removes a backup record and returns the row it removed.
func (db *DB) DeleteBackup(ctx context.Context, id int64) (*models.Backup, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	b, err := scanBackup(tx.QueryRowContext(ctx,
		`SELECT `+backupColumns+` FROM backups WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get backup: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM backups WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete backup: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}
