package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of actor roles known to the core
type Role string

const (
	RolePassenger Role = "PASSENGER"
	RoleDriver    Role = "DRIVER"
)

// ParseRole maps a raw role string onto the closed enum
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePassenger:
		return RolePassenger, nil
	case RoleDriver:
		return RoleDriver, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// User represents an identity known to the core
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Role      Role      `json:"role" db:"role"`
	Rating    float64   `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FullName returns the display name used in notifications
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// DriverProfile carries the driver-specific vehicle summary
type DriverProfile struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	VehicleBrand string    `json:"vehicle_brand" db:"vehicle_brand"`
	VehicleModel string    `json:"vehicle_model" db:"vehicle_model"`
	LicensePlate string    `json:"license_plate" db:"license_plate"`
	IsOnline     bool      `json:"is_online" db:"is_online"`
	IsValidated  bool      `json:"is_validated" db:"is_validated"`
}

// Wallet is the narrow payment-collaborator view of a wallet
type Wallet struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Balance float64   `json:"balance"`
}
