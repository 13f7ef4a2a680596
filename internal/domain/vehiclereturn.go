package domain

import "time"

type ReturnStatus string

const (
	ReturnStatusPendingInspection ReturnStatus = "pending_inspection"
	ReturnStatusInspected         ReturnStatus = "inspected"
)

// FuelLevel is the fuel gauge reading recorded at return, ordered from
// full down to empty.
type FuelLevel string

const (
	FuelLevelFull         FuelLevel = "full"
	FuelLevelThreeQuarter FuelLevel = "three-quarter"
	FuelLevelHalf         FuelLevel = "half"
	FuelLevelQuarter      FuelLevel = "quarter"
	FuelLevelEmpty        FuelLevel = "empty"
)

// ParseFuelLevel validates an operator-entered fuel gauge reading.
func ParseFuelLevel(s string) (FuelLevel, bool) {
	switch FuelLevel(s) {
	case FuelLevelFull, FuelLevelThreeQuarter, FuelLevelHalf, FuelLevelQuarter, FuelLevelEmpty:
		return FuelLevel(s), true
	}
	return "", false
}

// Return records a vehicle being physically handed back, awaiting
// inspection. Exactly one Return exists per Rental. Only Status and
// InspectionID mutate, and only once, when the inspection closes it.
type Return struct {
	ID                 string       `json:"id"`
	RentalID           string       `json:"rental_id"`
	CarID              string       `json:"car_id"`
	CarName            string       `json:"car_name"`
	CarPlate           string       `json:"car_plate"`
	CustomerName       string       `json:"customer_name"`
	CustomerEmail      string       `json:"customer_email"`
	PickupDate         string       `json:"pickup_date"`
	ExpectedReturnDate string       `json:"expected_return_date"`
	ActualReturnDate   time.Time    `json:"actual_return_date"`
	ReturnLocation     string       `json:"return_location"`
	InitialMileage     int32        `json:"initial_mileage"`
	FinalMileage       int32        `json:"final_mileage"`
	MileageDriven      int32        `json:"mileage_driven"`
	FuelLevel          FuelLevel    `json:"fuel_level"`
	Notes              string       `json:"notes"`
	BaseAmountCents    int64        `json:"base_amount_cents"`
	InsuranceCostCents int64        `json:"insurance_cost_cents"`
	Status             ReturnStatus `json:"status"`
	InspectionID       *string      `json:"inspection_id,omitempty"`
	ReturnedAt         time.Time    `json:"returned_at"`
}
