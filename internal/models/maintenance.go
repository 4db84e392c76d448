package models

import "time"

// Maintenance represents one service visit of a car.
type Maintenance struct {
	ID          int64     `json:"id"`
	CarID       int64     `json:"car_id"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Date        time.Time `json:"date"`
	Mileage     float64   `json:"mileage"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewMaintenance carries the fields needed to record a service visit.
type NewMaintenance struct {
	CarID       int64     `json:"car_id"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Date        time.Time `json:"date"`
	Mileage     float64   `json:"mileage"`
}

// MaintenancePatch is a partial update; nil fields are left unchanged.
type MaintenancePatch struct {
	CarID       *int64     `json:"car_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	Cost        *float64   `json:"cost,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Mileage     *float64   `json:"mileage,omitempty"`
}
