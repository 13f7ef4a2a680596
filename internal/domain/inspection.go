package domain

import "time"

type InspectionStatus string

const (
	InspectionStatusCompleted InspectionStatus = "completed"
)

type DamageLevel string

const (
	DamageLevelNone     DamageLevel = "none"
	DamageLevelMinor    DamageLevel = "minor"
	DamageLevelModerate DamageLevel = "moderate"
	DamageLevelMajor    DamageLevel = "major"
)

// ParseDamageLevel validates an operator-entered damage assessment.
func ParseDamageLevel(s string) (DamageLevel, bool) {
	switch DamageLevel(s) {
	case DamageLevelNone, DamageLevelMinor, DamageLevelModerate, DamageLevelMajor:
		return DamageLevel(s), true
	}
	return "", false
}

// Inspection is the final assessment that closes a Return and settles the
// total charges. It is the terminal record of the lifecycle and never
// mutates after creation.
type Inspection struct {
	ID                 string           `json:"id"`
	ReturnID           string           `json:"return_id"`
	RentalID           string           `json:"rental_id"`
	CarID              string           `json:"car_id"`
	CarName            string           `json:"car_name"`
	CustomerName       string           `json:"customer_name"`
	CustomerEmail      string           `json:"customer_email"`
	DamageLevel        DamageLevel      `json:"damage_level"`
	DamageDetails      string           `json:"damage_details"`
	DamageChargeCents  int64            `json:"damage_charge_cents"`
	LateDays           int32            `json:"late_days"`
	LateFeeCents       int64            `json:"late_fee_cents"`
	FuelChargeCents    int64            `json:"fuel_charge_cents"`
	InspectorNotes     string           `json:"inspector_notes"`
	BaseAmountCents    int64            `json:"base_amount_cents"`
	InsuranceCostCents int64            `json:"insurance_cost_cents"`
	TotalChargesCents  int64            `json:"total_charges_cents"`
	FinalAmountCents   int64            `json:"final_amount_cents"`
	Status             InspectionStatus `json:"status"`
	InspectedAt        time.Time        `json:"inspected_at"`
}
