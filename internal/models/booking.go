package models

import (
	"math"
	"time"
)

// BookingStatus describes the lifecycle of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the status is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusActive,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// BookingPaymentStatus tracks whether a booking has been paid for.
type BookingPaymentStatus string

const (
	BookingPaymentPending  BookingPaymentStatus = "pending"
	BookingPaymentPaid     BookingPaymentStatus = "paid"
	BookingPaymentRefunded BookingPaymentStatus = "refunded"
)

// Booking represents a rental reservation of one car by one client.
type Booking struct {
	ID             int64                `json:"id"`
	UserID         int64                `json:"user_id"`
	CarID          int64                `json:"car_id"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	TotalDays      int                  `json:"total_days"`
	TotalPrice     float64              `json:"total_price"`
	Status         BookingStatus        `json:"status"`
	PickupLocation string               `json:"pickup_location"`
	PaymentStatus  BookingPaymentStatus `json:"payment_status"`
	CreatedAt      time.Time            `json:"created_at"`
}

// NewBooking carries the fields needed to create a booking.
type NewBooking struct {
	UserID         int64                `json:"user_id"`
	CarID          int64                `json:"car_id"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	TotalDays      int                  `json:"total_days"`
	TotalPrice     float64              `json:"total_price"`
	Status         BookingStatus        `json:"status"`
	PickupLocation string               `json:"pickup_location"`
	PaymentStatus  BookingPaymentStatus `json:"payment_status"`
}

// BookingPatch is a partial update; nil fields are left unchanged.
type BookingPatch struct {
	UserID         *int64                `json:"user_id,omitempty"`
	CarID          *int64                `json:"car_id,omitempty"`
	StartDate      *time.Time            `json:"start_date,omitempty"`
	EndDate        *time.Time            `json:"end_date,omitempty"`
	TotalDays      *int                  `json:"total_days,omitempty"`
	TotalPrice     *float64              `json:"total_price,omitempty"`
	Status         *BookingStatus        `json:"status,omitempty"`
	PickupLocation *string               `json:"pickup_location,omitempty"`
	PaymentStatus  *BookingPaymentStatus `json:"payment_status,omitempty"`
}

// TotalDaysBetween returns the number of billable days between two dates.
// Partial days count as a full day; a same-day rental is one day.
func TotalDaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days == 0 {
		days = 1
	}
	return days
}

// Recalculate fills TotalDays and TotalPrice from the date range and a daily rate.
func (b *NewBooking) Recalculate(dailyPrice float64) {
	b.TotalDays = TotalDaysBetween(b.StartDate, b.EndDate)
	b.TotalPrice = float64(b.TotalDays) * dailyPrice
}
