package jobs

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lululale/zoom-car-rental/internal/config"
	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/repository/file"
)

func seedRental(t *testing.T, store *file.Store, id, returnDate string, status domain.RentalStatus) {
	t.Helper()
	require.NoError(t, store.Rentals().Create(context.Background(), &domain.Rental{
		ID:            id,
		ReservationID: "RES-1704067200000-3f9a2c1b",
		CarID:         "CAR001",
		CarName:       "Toyota Camry",
		CarPlate:      "ABC-1234",
		CustomerName:  "Dana Whitfield",
		PickupDate:    "2024-01-01",
		ReturnDate:    returnDate,
		Status:        status,
		PickedUpAt:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}))
}

func TestOverdueRentals(t *testing.T) {
	ctx := context.Background()
	store, err := file.Open(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)

	today := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)

	seedRental(t, store, "RENT-1", "2024-01-05", domain.RentalStatusActive)   // overdue
	seedRental(t, store, "RENT-2", "2024-01-10", domain.RentalStatusActive)   // due today
	seedRental(t, store, "RENT-3", "2024-01-20", domain.RentalStatusActive)   // due later
	seedRental(t, store, "RENT-4", "2024-01-02", domain.RentalStatusReturned) // already back
	seedRental(t, store, "RENT-5", "not-a-date", domain.RentalStatusActive)   // skipped

	jr := NewJobRunner(store, &config.Config{})
	overdue, err := jr.OverdueRentals(ctx, today)
	require.NoError(t, err)

	require.Len(t, overdue, 1)
	assert.Equal(t, "RENT-1", overdue[0].ID)
}

func TestRunWithRecovery(t *testing.T) {
	jr := NewJobRunner(nil, &config.Config{})
	assert.NotPanics(t, func() {
		jr.runWithRecovery("ExplodingJob", func() { panic("boom") })
	})
}
