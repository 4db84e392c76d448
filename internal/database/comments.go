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

const commentColumns = `id, user_id, comment, created_at`

func scanComment(row interface{ Scan(dest ...any) error }) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.UserID, &c.Comment, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListComments returns all comments ordered by creation time.
func (db *DB) ListComments(ctx context.Context) ([]models.Comment, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+commentColumns+` FROM comments ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

// GetComment returns one comment by id.
func (db *DB) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	c, err := scanComment(db.QueryRowContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}

// CreateComment inserts a comment and returns the stored row.
func (db *DB) CreateComment(ctx context.Context, n models.NewComment) (*models.Comment, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO comments (user_id, comment, created_at) VALUES (?, ?, ?)`,
		n.UserID, n.Comment, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return db.GetComment(ctx, id)
}

// UpdateComment applies the non-nil patch fields and returns the stored row.
func (db *DB) UpdateComment(ctx context.Context, id int64, patch models.CommentPatch) (*models.Comment, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.UserID != nil {
		set("user_id", *patch.UserID)
	}
	if patch.Comment != nil {
		set("comment", *patch.Comment)
	}

	if len(sets) == 0 {
		return db.GetComment(ctx, id)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE comments SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetComment(ctx, id)
}

// DeleteComment removes a comment and returns the row it removed.
func (db *DB) DeleteComment(ctx context.Context, id int64) (*models.Comment, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := scanComment(tx.QueryRowContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return c, nil
}
