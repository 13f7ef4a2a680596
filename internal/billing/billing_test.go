package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lululale/zoom-car-rental/internal/domain"
)

func TestDaysBetween(t *testing.T) {
	t.Run("Three day booking", func(t *testing.T) {
		days, err := DaysBetween("2024-01-01", "2024-01-04")
		assert.NoError(t, err)
		assert.Equal(t, int32(3), days)
	})

	t.Run("Same day counts as one", func(t *testing.T) {
		days, err := DaysBetween("2024-01-01", "2024-01-01")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), days)
	})

	t.Run("Symmetric", func(t *testing.T) {
		a, err := DaysBetween("2024-01-01", "2024-01-15")
		assert.NoError(t, err)
		b, err := DaysBetween("2024-01-15", "2024-01-01")
		assert.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Across month boundary", func(t *testing.T) {
		days, err := DaysBetween("2024-01-30", "2024-02-02")
		assert.NoError(t, err)
		assert.Equal(t, int32(3), days)
	})

	t.Run("Unparsable start date", func(t *testing.T) {
		_, err := DaysBetween("01/01/2024", "2024-01-04")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Unparsable end date", func(t *testing.T) {
		_, err := DaysBetween("2024-01-01", "tomorrow")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRentalTotal(t *testing.T) {
	// dailyRate=45.00, pickup 2024-01-01, return 2024-01-04
	days, err := DaysBetween("2024-01-01", "2024-01-04")
	assert.NoError(t, err)
	assert.Equal(t, int64(13500), RentalTotal(days, 4500))
}

func TestInsuranceCost(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		assert.Equal(t, int64(6000), InsuranceCost(3, true))
	})

	t.Run("Declined", func(t *testing.T) {
		assert.Equal(t, int64(0), InsuranceCost(3, false))
	})
}

func TestLateCharge(t *testing.T) {
	expected := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	t.Run("Two days late", func(t *testing.T) {
		actual := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
		days, fee := LateCharge(expected, actual)
		assert.Equal(t, int32(2), days)
		assert.Equal(t, int64(10000), fee)
	})

	t.Run("Partial day rounds up", func(t *testing.T) {
		actual := time.Date(2024, 1, 4, 6, 30, 0, 0, time.UTC)
		days, fee := LateCharge(expected, actual)
		assert.Equal(t, int32(1), days)
		assert.Equal(t, int64(5000), fee)
	})

	t.Run("On time", func(t *testing.T) {
		days, fee := LateCharge(expected, expected)
		assert.Equal(t, int32(0), days)
		assert.Equal(t, int64(0), fee)
	})

	t.Run("Early return", func(t *testing.T) {
		actual := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
		days, fee := LateCharge(expected, actual)
		assert.Equal(t, int32(0), days)
		assert.Equal(t, int64(0), fee)
	})
}

func TestFuelCharge(t *testing.T) {
	assert.Equal(t, int64(0), FuelCharge(domain.FuelLevelFull))
	assert.Equal(t, int64(4000), FuelCharge(domain.FuelLevelHalf))
	assert.Equal(t, int64(4000), FuelCharge(domain.FuelLevelEmpty))
}

func TestDamageCharge(t *testing.T) {
	t.Run("None forces zero", func(t *testing.T) {
		operator := int64(99999)
		charge, err := DamageCharge(domain.DamageLevelNone, &operator)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), charge)
	})

	t.Run("Defaults to suggested value", func(t *testing.T) {
		charge, err := DamageCharge(domain.DamageLevelMinor, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(10000), charge)

		charge, err = DamageCharge(domain.DamageLevelModerate, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(35000), charge)

		charge, err = DamageCharge(domain.DamageLevelMajor, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(75000), charge)
	})

	t.Run("Operator override", func(t *testing.T) {
		operator := int64(12550)
		charge, err := DamageCharge(domain.DamageLevelMinor, &operator)
		assert.NoError(t, err)
		assert.Equal(t, int64(12550), charge)
	})

	t.Run("Negative operator value rejected", func(t *testing.T) {
		operator := int64(-100)
		_, err := DamageCharge(domain.DamageLevelMinor, &operator)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestFinalAmount(t *testing.T) {
	t.Run("Full settlement", func(t *testing.T) {
		// base 135.00 + insurance 60.00 + damage 100.00 + late 100.00 + fuel 40.00
		total, err := FinalAmount(13500, 6000, 10000, 10000, 4000)
		assert.NoError(t, err)
		assert.Equal(t, int64(43500), total)
	})

	t.Run("Never below base plus insurance", func(t *testing.T) {
		total, err := FinalAmount(13500, 6000, 0, 0, 0)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(13500+6000))
	})

	t.Run("Negative input rejected", func(t *testing.T) {
		_, err := FinalAmount(13500, -1, 0, 0, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
