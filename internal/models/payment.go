package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus describes the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Valid reports whether the status is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Payment represents a charge against a booking.
type Payment struct {
	ID             int64         `json:"id"`
	BookingID      int64         `json:"booking_id"`
	UserID         int64         `json:"user_id"`
	Amount         float64       `json:"amount"`
	Status         PaymentStatus `json:"status"`
	TransactionID  *string       `json:"transaction_id,omitempty"`
	CardLastDigits *string       `json:"card_last_digits,omitempty"`
	PaymentDate    *time.Time    `json:"payment_date,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// NewPayment carries the fields needed to record a payment.
type NewPayment struct {
	BookingID      int64         `json:"booking_id"`
	UserID         int64         `json:"user_id"`
	Amount         float64       `json:"amount"`
	Status         PaymentStatus `json:"status"`
	TransactionID  *string       `json:"transaction_id,omitempty"`
	CardLastDigits *string       `json:"card_last_digits,omitempty"`
	PaymentDate    *time.Time    `json:"payment_date,omitempty"`
}

// PaymentPatch is a partial update; nil fields are left unchanged.
type PaymentPatch struct {
	BookingID      *int64         `json:"booking_id,omitempty"`
	UserID         *int64         `json:"user_id,omitempty"`
	Amount         *float64       `json:"amount,omitempty"`
	Status         *PaymentStatus `json:"status,omitempty"`
	TransactionID  *string        `json:"transaction_id,omitempty"`
	CardLastDigits *string        `json:"card_last_digits,omitempty"`
	PaymentDate    *time.Time     `json:"payment_date,omitempty"`
}

// GenerateTransactionID returns a fresh unique transaction identifier.
func GenerateTransactionID() string {
	return uuid.NewString()
}
