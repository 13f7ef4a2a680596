package jobs

import (
	"context"
	"time"

	"github.com/lululale/zoom-car-rental/internal/billing"
	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/logger"
)

// OverdueRentals returns the active rentals whose expected return date
// lies before the given day.
func (jr *JobRunner) OverdueRentals(ctx context.Context, today time.Time) ([]domain.Rental, error) {
	active, err := jr.store.Rentals().ListByStatus(ctx, domain.RentalStatusActive)
	if err != nil {
		return nil, err
	}

	var overdue []domain.Rental
	for _, rental := range active {
		expected, err := time.Parse(billing.DateLayout, rental.ReturnDate)
		if err != nil {
			logger.Warn("Skipping rental with unparsable return date",
				"rental_id", rental.ID, "return_date", rental.ReturnDate)
			continue
		}
		if expected.Before(today.Truncate(24 * time.Hour)) {
			overdue = append(overdue, rental)
		}
	}
	return overdue, nil
}

// RunOverdueRentalScan reports active rentals past their expected return
// date so the desk can chase them up.
func (jr *JobRunner) RunOverdueRentalScan() {
	jr.runWithRecovery("OverdueRentalScan", func() {
		ctx := context.Background()

		overdue, err := jr.OverdueRentals(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to scan for overdue rentals", "error", err)
			return
		}

		logger.Info("Overdue rental scan finished", "count", len(overdue))
		for _, rental := range overdue {
			logger.Warn("Rental is overdue",
				"rental_id", rental.ID,
				"customer", rental.CustomerName,
				"car_plate", rental.CarPlate,
				"expected_return", rental.ReturnDate)
		}
	})
}

// RunPendingInspectionScan reports returns still waiting on inspection.
func (jr *JobRunner) RunPendingInspectionScan() {
	jr.runWithRecovery("PendingInspectionScan", func() {
		ctx := context.Background()

		pending, err := jr.store.Returns().ListPending(ctx)
		if err != nil {
			logger.Error("Failed to scan for pending inspections", "error", err)
			return
		}

		logger.Info("Pending inspection scan finished", "count", len(pending))
		for _, ret := range pending {
			logger.Info("Return awaiting inspection",
				"return_id", ret.ID,
				"car_plate", ret.CarPlate,
				"returned_at", ret.ReturnedAt,
				"location", ret.ReturnLocation)
		}
	})
}
