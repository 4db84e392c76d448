package models

import "time"

// CarCategory is the pricing class of a car.
type CarCategory string

const (
	CarCategoryEconomy  CarCategory = "economy"
	CarCategoryComfort  CarCategory = "comfort"
	CarCategoryBusiness CarCategory = "business"
)

// CarStatus reflects where the car currently is in its rental cycle.
type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusRented      CarStatus = "rented"
	CarStatusMaintenance CarStatus = "maintenance"
)

// Valid reports whether the status is one of the known car statuses.
func (s CarStatus) Valid() bool {
	switch s {
	case CarStatusAvailable, CarStatusRented, CarStatusMaintenance:
		return true
	}
	return false
}

// Car represents a vehicle in the fleet.
type Car struct {
	ID             int64       `json:"id"`
	LicensePlate   string      `json:"license_plate"`
	Brand          string      `json:"brand"`
	Model          string      `json:"model"`
	Year           int         `json:"year"`
	Color          string      `json:"color"`
	Category       CarCategory `json:"category"`
	DailyPrice     float64     `json:"daily_price"`
	IsAvailable    bool        `json:"is_available"`
	CurrentMileage float64     `json:"current_mileage"`
	Status         CarStatus   `json:"status"`
	Location       string      `json:"location"`
	CreatedAt      time.Time   `json:"created_at"`
}

// NewCar carries the fields needed to register a car.
type NewCar struct {
	LicensePlate   string      `json:"license_plate"`
	Brand          string      `json:"brand"`
	Model          string      `json:"model"`
	Year           int         `json:"year"`
	Color          string      `json:"color"`
	Category       CarCategory `json:"category"`
	DailyPrice     float64     `json:"daily_price"`
	IsAvailable    bool        `json:"is_available"`
	CurrentMileage float64     `json:"current_mileage"`
	Status         CarStatus   `json:"status"`
	Location       string      `json:"location"`
}

// CarPatch is a partial update; nil fields are left unchanged.
type CarPatch struct {
	LicensePlate   *string      `json:"license_plate,omitempty"`
	Brand          *string      `json:"brand,omitempty"`
	Model          *string      `json:"model,omitempty"`
	Year           *int         `json:"year,omitempty"`
	Color          *string      `json:"color,omitempty"`
	Category       *CarCategory `json:"category,omitempty"`
	DailyPrice     *float64     `json:"daily_price,omitempty"`
	IsAvailable    *bool        `json:"is_available,omitempty"`
	CurrentMileage *float64     `json:"current_mileage,omitempty"`
	Status         *CarStatus   `json:"status,omitempty"`
	Location       *string      `json:"location,omitempty"`
}
