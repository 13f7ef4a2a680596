// Package billing holds the pure monetary computation engine for the
// rental lifecycle. Every function is total, deterministic and free of
// I/O so that settlements are auditable.
package billing

import (
	"fmt"
	"math"
	"time"

	"github.com/lululale/zoom-car-rental/internal/domain"
)

// DateLayout is the calendar-date format used on all lifecycle records.
const DateLayout = "2006-01-02"

// Flat per-day and per-incident charges, in cents.
const (
	InsurancePerDayCents int64 = 2000
	LateFeePerDayCents   int64 = 5000
	FuelChargeCents      int64 = 4000
)

// suggestedDamageChargeCents maps a damage assessment to the charge
// pre-seeded for the inspector. Kept as data so the schedule can be
// read and changed in one place.
var suggestedDamageChargeCents = map[domain.DamageLevel]int64{
	domain.DamageLevelNone:     0,
	domain.DamageLevelMinor:    10000,
	domain.DamageLevelModerate: 35000,
	domain.DamageLevelMajor:    75000,
}

// DaysBetween returns the billable day count between two yyyy-mm-dd
// dates: the absolute difference rounded up to whole days, never less
// than one. The count is symmetric in its arguments.
func DaysBetween(startDate, endDate string) (int32, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid start date %q", domain.ErrValidation, startDate)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid end date %q", domain.ErrValidation, endDate)
	}

	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int32(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// RentalTotal is the base amount for a rental: days times the snapshotted
// daily rate.
func RentalTotal(days int32, dailyRateCents int64) int64 {
	return int64(days) * dailyRateCents
}

// InsuranceCost charges a flat daily premium when coverage was accepted.
func InsuranceCost(days int32, accepted bool) int64 {
	if !accepted {
		return 0
	}
	return int64(days) * InsurancePerDayCents
}

// LateCharge computes how many whole days past the expected return the
// vehicle came back, rounding any partial day up, and the resulting fee.
// An on-time or early return yields zero.
func LateCharge(expectedReturn, actualReturn time.Time) (lateDays int32, feeCents int64) {
	diff := actualReturn.Sub(expectedReturn)
	if diff <= 0 {
		return 0, 0
	}
	lateDays = int32(math.Ceil(diff.Hours() / 24))
	return lateDays, int64(lateDays) * LateFeePerDayCents
}

// FuelCharge is a flat refueling charge for any tank not returned full.
func FuelCharge(level domain.FuelLevel) int64 {
	if level == domain.FuelLevelFull {
		return 0
	}
	return FuelChargeCents
}

// SuggestedDamageCharge returns the pre-seeded charge for a damage level.
func SuggestedDamageCharge(level domain.DamageLevel) int64 {
	return suggestedDamageChargeCents[level]
}

// DamageCharge settles the damage line item. A "none" assessment is
// forced to zero regardless of operator input; otherwise the operator
// value applies when present (and non-negative), falling back to the
// suggested schedule.
func DamageCharge(level domain.DamageLevel, operatorCents *int64) (int64, error) {
	if level == domain.DamageLevelNone {
		return 0, nil
	}
	if operatorCents == nil {
		return SuggestedDamageCharge(level), nil
	}
	if *operatorCents < 0 {
		return 0, fmt.Errorf("%w: damage charge must be non-negative", domain.ErrValidation)
	}
	return *operatorCents, nil
}

// FinalAmount sums the settlement: base amount, insurance and the three
// inspection charges. Every input must be non-negative, which makes the
// result non-negative by construction.
func FinalAmount(baseCents, insuranceCents, damageCents, lateFeeCents, fuelCents int64) (int64, error) {
	for _, v := range []int64{baseCents, insuranceCents, damageCents, lateFeeCents, fuelCents} {
		if v < 0 {
			return 0, fmt.Errorf("%w: charge amounts must be non-negative", domain.ErrValidation)
		}
	}
	return baseCents + insuranceCents + damageCents + lateFeeCents + fuelCents, nil
}
