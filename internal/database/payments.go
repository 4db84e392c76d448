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

const paymentColumns = `id, booking_id, user_id, amount, status,
	transaction_id, card_last_digits, payment_date, created_at`

func scanPayment(row interface{ Scan(dest ...any) error }) (*models.Payment, error) {
	var p models.Payment
	var txID, digits sql.NullString
	var paidAt sql.NullTime
	err := row.Scan(
		&p.ID, &p.BookingID, &p.UserID, &p.Amount, &p.Status,
		&txID, &digits, &paidAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if txID.Valid {
		p.TransactionID = &txID.String
	}
	if digits.Valid {
		p.CardLastDigits = &digits.String
	}
	if paidAt.Valid {
		p.PaymentDate = &paidAt.Time
	}
	return &p, nil
}

// ListPayments returns all payments ordered by id.
func (db *DB) ListPayments(ctx context.Context) ([]models.Payment, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

// GetPayment returns one payment by id.
func (db *DB) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	p, err := scanPayment(db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// CreatePayment inserts a payment and returns the stored row.
// A missing transaction id is generated.
func (db *DB) CreatePayment(ctx context.Context, n models.NewPayment) (*models.Payment, error) {
	status := n.Status
	if status == "" {
		status = models.PaymentStatusPending
	}
	txID := n.TransactionID
	if txID == nil {
		generated := models.GenerateTransactionID()
		txID = &generated
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO payments (
			booking_id, user_id, amount, status,
			transaction_id, card_last_digits, payment_date, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.BookingID, n.UserID, n.Amount, status,
		txID, n.CardLastDigits, n.PaymentDate, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return db.GetPayment(ctx, id)
}

// UpdatePayment applies the non-nil patch fields and returns the stored row.
func (db *DB) UpdatePayment(ctx context.Context, id int64, patch models.PaymentPatch) (*models.Payment, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.BookingID != nil {
		set("booking_id", *patch.BookingID)
	}
	if patch.UserID != nil {
		set("user_id", *patch.UserID)
	}
	if patch.Amount != nil {
		set("amount", *patch.Amount)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.TransactionID != nil {
		set("transaction_id", *patch.TransactionID)
	}
	if patch.CardLastDigits != nil {
		set("card_last_digits", *patch.CardLastDigits)
	}
	if patch.PaymentDate != nil {
		set("payment_date", *patch.PaymentDate)
	}

	if len(sets) == 0 {
		return db.GetPayment(ctx, id)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE payments SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetPayment(ctx, id)
}

// DeletePayment removes a payment and returns the row it removed.
func (db *DB) DeletePayment(ctx context.Context, id int64) (*models.Payment, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := scanPayment(tx.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete payment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}
