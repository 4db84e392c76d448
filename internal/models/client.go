package models

import "time"

// ClientRole distinguishes ordinary clients from administrators.
type ClientRole string

const (
	ClientRoleClient ClientRole = "client"
	ClientRoleAdmin  ClientRole = "admin"
)

// Client represents a customer of the car-sharing service.
type Client struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Role          ClientRole `json:"role"`
	Phone         string     `json:"phone"`
	FullName      string     `json:"full_name"`
	DriverLicense *string    `json:"driver_license,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewClient carries the fields needed to register a client.
type NewClient struct {
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Role          ClientRole `json:"role"`
	Phone         string     `json:"phone"`
	FullName      string     `json:"full_name"`
	DriverLicense *string    `json:"driver_license,omitempty"`
	IsActive      bool       `json:"is_active"`
}

// ClientPatch is a partial update; nil fields are left unchanged.
type ClientPatch struct {
	Username      *string     `json:"username,omitempty"`
	Email         *string     `json:"email,omitempty"`
	Role          *ClientRole `json:"role,omitempty"`
	Phone         *string     `json:"phone,omitempty"`
	FullName      *string     `json:"full_name,omitempty"`
	DriverLicense *string     `json:"driver_license,omitempty"`
	IsActive      *bool       `json:"is_active,omitempty"`
}
