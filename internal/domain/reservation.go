package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusActive    ReservationStatus = "active"
)

// Reservation is a booked-but-not-yet-picked-up rental intent. It is
// immutable after creation except for Status and RentalID, which are set
// exactly once when the vehicle is picked up.
type Reservation struct {
	ID            string `json:"id"`
	CarID         string `json:"car_id"`
	CarName       string `json:"car_name"`
	CarPlate      string `json:"car_plate"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	PickupDate    string `json:"pickup_date"`
	ReturnDate    string `json:"return_date"`
	// Price snapshot fields, captured from the vehicle at booking time.
	// All downstream cost calculations use these snapshots, not live
	// catalog rates.
	DailyRateCents   int64             `json:"daily_rate_cents"`
	TotalAmountCents int64             `json:"total_amount_cents"`
	CardLast4        string            `json:"card_last4"`
	Status           ReservationStatus `json:"status"`
	RentalID         *string           `json:"rental_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}
