package file

import (
	"context"
	"fmt"
	"strings"

	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/repository"
)

// The repo views below hand out value copies only; callers never hold a
// reference into the live ledger.

type reservationRepo struct{ s *Store }

func (r *reservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	return r.s.apply(func(l *ledger) error {
		l.Reservations = append(l.Reservations, *res)
		return nil
	})
}

func (r *reservationRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var out *domain.Reservation
	err := r.s.read(func(l *ledger) error {
		for i := range l.Reservations {
			if strings.EqualFold(l.Reservations[i].ID, id) {
				rec := l.Reservations[i]
				out = &rec
				return nil
			}
		}
		return fmt.Errorf("%w: reservation %s", domain.ErrNotFound, id)
	})
	return out, err
}

func (r *reservationRepo) GetByEmail(ctx context.Context, email string) (*domain.Reservation, error) {
	var out *domain.Reservation
	err := r.s.read(func(l *ledger) error {
		for i := range l.Reservations {
			if strings.EqualFold(l.Reservations[i].CustomerEmail, email) {
				rec := l.Reservations[i]
				out = &rec
				return nil
			}
		}
		return fmt.Errorf("%w: reservation for %s", domain.ErrNotFound, email)
	})
	return out, err
}

func (r *reservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	return r.s.apply(func(l *ledger) error {
		for i := range l.Reservations {
			if strings.EqualFold(l.Reservations[i].ID, res.ID) {
				l.Reservations[i] = *res
				return nil
			}
		}
		return fmt.Errorf("%w: reservation %s", domain.ErrNotFound, res.ID)
	})
}

func (r *reservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.s.read(func(l *ledger) error {
		out = append([]domain.Reservation{}, l.Reservations...)
		return nil
	})
	return out, err
}

type rentalRepo struct{ s *Store }

func (r *rentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	return r.s.apply(func(l *ledger) error {
		l.Rentals = append(l.Rentals, *rental)
		return nil
	})
}

func (r *rentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	var out *domain.Rental
	err := r.s.read(func(l *ledger) error {
		for i := range l.Rentals {
			if strings.EqualFold(l.Rentals[i].ID, id) {
				rec := l.Rentals[i]
				out = &rec
				return nil
			}
		}
		return fmt.Errorf("%w: rental %s", domain.ErrNotFound, id)
	})
	return out, err
}

func (r *rentalRepo) GetByPlate(ctx context.Context, plate string) (*domain.Rental, error) {
	want := repository.NormalizePlate(plate)
	var out *domain.Rental
	err := r.s.read(func(l *ledger) error {
		for i := range l.Rentals {
			if repository.NormalizePlate(l.Rentals[i].CarPlate) == want {
				rec := l.Rentals[i]
				out = &rec
				return nil
			}
		}
		return fmt.Errorf("%w: rental for plate %s", domain.ErrNotFound, plate)
	})
	return out, err
}

func (r *rentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	return r.s.apply(func(l *ledger) error {
		for i := range l.Rentals {
			if strings.EqualFold(l.Rentals[i].ID, rental.ID) {
				l.Rentals[i] = *rental
				return nil
			}
		}
		return fmt.Errorf("%w: rental %s", domain.ErrNotFound, rental.ID)
	})
}

func (r *rentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	var out []domain.Rental
	err := r.s.read(func(l *ledger) error {
		out = append([]domain.Rental{}, l.Rentals...)
		return nil
	})
	return out, err
}

func (r *rentalRepo) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	var out []domain.Rental
	err := r.s.read(func(l *ledger) error {
		for _, rec := range l.Rentals {
			if rec.Status == status {
				out = append(out, rec)
			}
		}
		return nil
	})
	return out, err
}

type returnRepo struct{ s *Store }

func (r *returnRepo) Create(ctx context.Context, ret *domain.Return) error {
	return r.s.apply(func(l *ledger) error {
		l.Returns = append(l.Returns, *ret)
		return nil
	})
}

func (r *returnRepo) GetByID(ctx context.Context, id string) (*domain.Return, error) {
	var out *domain.Return
	err := r.s.read(func(l *ledger) error {
		for i := range l.Returns {
			if strings.EqualFold(l.Returns[i].ID, id) {
				rec := l.Returns[i]
				out = &rec
				return nil
			}
		}
		return fmt.Errorf("%w: return %s", domain.ErrNotFound, id)
	})
	return out, err
}

func (r *returnRepo) Update(ctx context.Context, ret *domain.Return) error {
	return r.s.apply(func(l *ledger) error {
		for i := range l.Returns {
			if strings.EqualFold(l.Returns[i].ID, ret.ID) {
				l.Returns[i] = *ret
				return nil
			}
		}
		return fmt.Errorf("%w: return %s", domain.ErrNotFound, ret.ID)
	})
}

func (r *returnRepo) List(ctx context.Context) ([]domain.Return, error) {
	var out []domain.Return
	err := r.s.read(func(l *ledger) error {
		out = append([]domain.Return{}, l.Returns...)
		return nil
	})
	return out, err
}

func (r *returnRepo) ListPending(ctx context.Context) ([]domain.Return, error) {
	var out []domain.Return
	err := r.s.read(func(l *ledger) error {
		for _, rec := range l.Returns {
			if rec.Status == domain.ReturnStatusPendingInspection {
				out = append(out, rec)
			}
		}
		return nil
	})
	return out, err
}

type inspectionRepo struct{ s *Store }

func (r *inspectionRepo) Create(ctx context.Context, ins *domain.Inspection) error {
	return r.s.apply(func(l *ledger) error {
		l.Inspections = append(l.Inspections, *ins)
		return nil
	})
}

func (r *inspectionRepo) GetByID(ctx context.Context, id string) (*domain.Inspection, error) {
	var out *domain.Inspection
	err := r.s.read(func(l *ledger) error {
		for i := range l.Inspections {
			if strings.EqualFold(l.Inspections[i].ID, id) {
				rec := l.Inspections[i]
				out = &rec
				return nil
			}
		}
		return fmt.Errorf("%w: inspection %s", domain.ErrNotFound, id)
	})
	return out, err
}

func (r *inspectionRepo) GetByReturnID(ctx context.Context, returnID string) (*domain.Inspection, error) {
	var out *domain.Inspection
	err := r.s.read(func(l *ledger) error {
		for i := range l.Inspections {
			if strings.EqualFold(l.Inspections[i].ReturnID, returnID) {
				rec := l.Inspections[i]
				out = &rec
				return nil
			}
		}
		return fmt.Errorf("%w: inspection for return %s", domain.ErrNotFound, returnID)
	})
	return out, err
}

func (r *inspectionRepo) List(ctx context.Context) ([]domain.Inspection, error) {
	var out []domain.Inspection
	err := r.s.read(func(l *ledger) error {
		out = append([]domain.Inspection{}, l.Inspections...)
		return nil
	})
	return out, err
}
