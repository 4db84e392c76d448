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

const bookingColumns = `id, user_id, car_id, start_date, end_date, total_days,
	total_price, status, pickup_location, payment_status, created_at`

func scanBooking(row interface{ Scan(dest ...any) error }) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.CarID, &b.StartDate, &b.EndDate, &b.TotalDays,
		&b.TotalPrice, &b.Status, &b.PickupLocation, &b.PaymentStatus, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBookings returns all bookings ordered by id.
func (db *DB) ListBookings(ctx context.Context) ([]models.Booking, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// GetBooking returns one booking by id.
func (db *DB) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	b, err := scanBooking(db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// CreateBooking inserts a booking and returns the stored row.
// The referenced client and car must exist.
func (db *DB) CreateBooking(ctx context.Context, n models.NewBooking) (*models.Booking, error) {
	status := n.Status
	if status == "" {
		status = models.BookingStatusPending
	}
	payment := n.PaymentStatus
	if payment == "" {
		payment = models.BookingPaymentPending
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO bookings (
			user_id, car_id, start_date, end_date, total_days,
			total_price, status, pickup_location, payment_status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.UserID, n.CarID, n.StartDate, n.EndDate, n.TotalDays,
		n.TotalPrice, status, n.PickupLocation, payment, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last id: %w", err)
	}
	return db.GetBooking(ctx, id)
}

// UpdateBooking applies the non-nil patch fields and returns the stored row.
func (db *DB) UpdateBooking(ctx context.Context, id int64, patch models.BookingPatch) (*models.Booking, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.UserID != nil {
		set("user_id", *patch.UserID)
	}
	if patch.CarID != nil {
		set("car_id", *patch.CarID)
	}
	if patch.StartDate != nil {
		set("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		set("end_date", *patch.EndDate)
	}
	if patch.TotalDays != nil {
		set("total_days", *patch.TotalDays)
	}
	if patch.TotalPrice != nil {
		set("total_price", *patch.TotalPrice)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.PickupLocation != nil {
		set("pickup_location", *patch.PickupLocation)
	}
	if patch.PaymentStatus != nil {
		set("payment_status", *patch.PaymentStatus)
	}

	if len(sets) == 0 {
		return db.GetBooking(ctx, id)
	}

	args = append(args, id)
	result, err := db.ExecContext(ctx,
		`UPDATE bookings SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetBooking(ctx, id)
}

// DeleteBooking removes a booking and returns the row it removed.
func (db *DB) DeleteBooking(ctx context.Context, id int64) (*models.Booking, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	b, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}
