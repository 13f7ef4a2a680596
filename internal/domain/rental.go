package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "active"
	RentalStatusReturned RentalStatus = "returned"
)

// Rental is an in-possession lease created when a Reservation is fulfilled
// at pickup. Exactly one Rental exists per Reservation. Only Status and
// ReturnID mutate, and only once, when the vehicle comes back.
type Rental struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	CarID         string `json:"car_id"`
	CarName       string `json:"car_name"`
	CarPlate      string `json:"car_plate"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	PickupDate    string `json:"pickup_date"`
	ReturnDate    string `json:"return_date"`
	LicenseNumber string `json:"license_number"`
	LicenseExpiry string `json:"license_expiry"`
	// InitialMileage is the odometer reading recorded at pickup.
	InsuranceAccepted  bool         `json:"insurance_accepted"`
	InitialMileage     int32        `json:"initial_mileage"`
	DailyRateCents     int64        `json:"daily_rate_cents"`
	BaseAmountCents    int64        `json:"base_amount_cents"`
	InsuranceCostCents int64        `json:"insurance_cost_cents"`
	Status             RentalStatus `json:"status"`
	ReturnID           *string      `json:"return_id,omitempty"`
	PickedUpAt         time.Time    `json:"picked_up_at"`
}
