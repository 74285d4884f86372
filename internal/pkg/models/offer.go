package models

import (
	"time"

	"github.com/google/uuid"
)

// OfferState represents the lifecycle state of an offer
type OfferState string

const (
	OfferStatePending        OfferState = "PENDING"
	OfferStateBidReceived    OfferState = "BID_RECEIVED"
	OfferStateDriverSelected OfferState = "DRIVER_SELECTED"
	OfferStateValidated      OfferState = "VALIDATED"
	OfferStateCancelled      OfferState = "CANCELLED"
)

// IsTerminal reports whether no further transitions are allowed
func (s OfferState) IsTerminal() bool {
	return s == OfferStateValidated || s == OfferStateCancelled
}

// IsOpen reports whether the offer is still discoverable by drivers
func (s OfferState) IsOpen() bool {
	return s == OfferStatePending || s == OfferStateBidReceived
}

// Offer represents a passenger's open transport request
type Offer struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	PassengerID      uuid.UUID  `json:"passenger_id" db:"passenger_id"`
	SelectedDriverID *uuid.UUID `json:"selected_driver_id,omitempty" db:"selected_driver_id"`
	StartPoint       string     `json:"start_point" db:"start_point"`
	StartLat         float64    `json:"start_lat" db:"start_lat"`
	StartLon         float64    `json:"start_lon" db:"start_lon"`
	EndPoint         string     `json:"end_point" db:"end_point"`
	EndLat           float64    `json:"end_lat" db:"end_lat"`
	EndLon           float64    `json:"end_lon" db:"end_lon"`
	Price            float64    `json:"price" db:"price"`
	PassengerPhone   string     `json:"passenger_phone" db:"passenger_phone"`
	DepartureTime    string     `json:"departure_time" db:"departure_time"`
	State            OfferState `json:"state" db:"state"`
	Bids             []Bid      `json:"bids"`
	Version          int64      `json:"version" db:"version"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// HasBidFrom reports whether the driver already applied to this offer
func (o *Offer) HasBidFrom(driverID uuid.UUID) bool {
	for _, b := range o.Bids {
		if b.DriverID == driverID {
			return true
		}
	}
	return false
}

// Bid represents one driver's interest in an offer. Display fields are
// enrichment only and never persisted with the linkage row.
type Bid struct {
	DriverID     uuid.UUID `json:"driver_id" db:"driver_id"`
	Position     int       `json:"position" db:"position"`
	DriverName   string    `json:"driver_name,omitempty"`
	DriverPhone  string    `json:"driver_phone,omitempty"`
	Rating       float64   `json:"rating,omitempty"`
	VehicleBrand string    `json:"vehicle_brand,omitempty"`
	VehicleModel string    `json:"vehicle_model,omitempty"`
	LicensePlate string    `json:"license_plate,omitempty"`
	Latitude     float64   `json:"latitude,omitempty"`
	Longitude    float64   `json:"longitude,omitempty"`
	DistanceKm   float64   `json:"distance_km,omitempty"`
	EtaMinutes   int       `json:"eta_minutes,omitempty"`
}

// CreateOfferRequest is the inbound payload for offer creation
type CreateOfferRequest struct {
	StartPoint     string  `json:"start_point"`
	StartLat       float64 `json:"start_lat"`
	StartLon       float64 `json:"start_lon"`
	EndPoint       string  `json:"end_point"`
	EndLat         float64 `json:"end_lat"`
	EndLon         float64 `json:"end_lon"`
	Price          float64 `json:"price"`
	PassengerPhone string  `json:"passenger_phone"`
	DepartureTime  string  `json:"departure_time"`
}
