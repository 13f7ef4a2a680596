// Package repository defines the ledger store contract: four append-only
// record collections keyed by generated ids, with typed lookups and an
// atomic transaction boundary for linked writes.
package repository

import (
	"context"

	"github.com/lululale/zoom-car-rental/internal/domain"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	// GetByID matches ids case-insensitively.
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// GetByEmail returns the earliest reservation booked under the email.
	GetByEmail(ctx context.Context, email string) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	// GetByPlate matches plates with separators stripped, so "abc1234"
	// finds the rental for plate "ABC-1234".
	GetByPlate(ctx context.Context, plate string) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context) ([]domain.Rental, error)
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
}

type ReturnRepository interface {
	Create(ctx context.Context, ret *domain.Return) error
	GetByID(ctx context.Context, id string) (*domain.Return, error)
	Update(ctx context.Context, ret *domain.Return) error
	List(ctx context.Context) ([]domain.Return, error)
	// ListPending returns returns awaiting inspection in ledger insertion
	// order, so the pending queue is stable across reloads.
	ListPending(ctx context.Context) ([]domain.Return, error)
}

type InspectionRepository interface {
	Create(ctx context.Context, ins *domain.Inspection) error
	GetByID(ctx context.Context, id string) (*domain.Inspection, error)
	GetByReturnID(ctx context.Context, returnID string) (*domain.Inspection, error)
	List(ctx context.Context) ([]domain.Inspection, error)
}

// Store aggregates the four collections. Transact runs fn against a view
// of the store in which every write commits together or not at all; a
// lifecycle transition uses it to pair the downstream append with the
// upstream status patch so no partially-linked state is ever visible.
type Store interface {
	Reservations() ReservationRepository
	Rentals() RentalRepository
	Returns() ReturnRepository
	Inspections() InspectionRepository
	Transact(ctx context.Context, fn func(Store) error) error
}
