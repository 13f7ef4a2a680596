// Package service implements the rental lifecycle controller: the state
// machine taking a reservation through pickup, return and inspection.
// Each transition checks its guards in order (lookup, state, field
// validation) and then appends the downstream record and patches the
// upstream record in one atomic unit, so callers either observe the
// complete transition or nothing at all.
package service

import (
	"context"

	"github.com/lululale/zoom-car-rental/internal/domain"
)

// BookingRequest carries the customer-entered booking form. Only the
// last four digits of the card number are ever retained.
type BookingRequest struct {
	CarID         string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PickupDate    string
	ReturnDate    string
	CardNumber    string
}

// PickupRequest carries the operator-entered fields recorded when the
// vehicle is released at the office.
type PickupRequest struct {
	LicenseNumber     string
	LicenseExpiry     string
	InsuranceAccepted bool
	InitialMileage    int32
}

// ReturnRequest carries the operator-entered fields recorded when the
// vehicle is physically handed back.
type ReturnRequest struct {
	FinalMileage   int32
	FuelLevel      string
	ReturnLocation string
	Notes          string
}

// InspectionRequest carries the inspector's assessment. DamageChargeCents
// overrides the suggested charge for the damage level when set; it is
// ignored entirely for a "none" assessment.
type InspectionRequest struct {
	DamageLevel       string
	DamageDetails     string
	DamageChargeCents *int64
	InspectorNotes    string
}

type ReservationService interface {
	BookReservation(ctx context.Context, req BookingRequest) (*domain.Reservation, error)
	// FindReservation looks a reservation up by id or customer email.
	FindReservation(ctx context.Context, key string) (*domain.Reservation, error)
}

type RentalService interface {
	// PickupVehicle fulfills a confirmed reservation: it creates the
	// rental and marks the reservation active, atomically.
	PickupVehicle(ctx context.Context, reservationKey string, req PickupRequest) (*domain.Rental, error)
	// FindActiveRental looks a rental up by id or license plate.
	FindActiveRental(ctx context.Context, key string) (*domain.Rental, error)
}

type ReturnService interface {
	// ReturnVehicle closes an active rental: it creates the return record
	// pending inspection and marks the rental returned, atomically.
	ReturnVehicle(ctx context.Context, rentalKey string, req ReturnRequest) (*domain.Return, error)
	// PendingInspections returns the inspection queue in ledger insertion
	// order.
	PendingInspections(ctx context.Context) ([]domain.Return, error)
}

type InspectionService interface {
	// CompleteInspection settles a pending return: it computes all charges,
	// creates the completed inspection and marks the return inspected,
	// atomically. This is the terminal transition of the lifecycle.
	CompleteInspection(ctx context.Context, returnID string, req InspectionRequest) (*domain.Inspection, error)
}
