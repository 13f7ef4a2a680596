package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lululale/zoom-car-rental/internal/billing"
	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/repository"
)

type rentalService struct {
	store repository.Store
}

func NewRentalService(store repository.Store) RentalService {
	return &rentalService{store: store}
}

func (s *rentalService) PickupVehicle(ctx context.Context, reservationKey string, req PickupRequest) (*domain.Rental, error) {
	res, err := findReservation(ctx, s.store.Reservations(), reservationKey)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusConfirmed {
		return nil, fmt.Errorf("%w: reservation %s has already been picked up", domain.ErrInvalidState, res.ID)
	}

	if strings.TrimSpace(req.LicenseNumber) == "" {
		return nil, fmt.Errorf("%w: license number is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.LicenseExpiry) == "" {
		return nil, fmt.Errorf("%w: license expiry is required", domain.ErrValidation)
	}
	if req.InitialMileage < 0 {
		return nil, fmt.Errorf("%w: initial mileage must be non-negative", domain.ErrValidation)
	}

	days, err := billing.DaysBetween(res.PickupDate, res.ReturnDate)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		ID:                 domain.NewID(domain.IDPrefixRental),
		ReservationID:      res.ID,
		CarID:              res.CarID,
		CarName:            res.CarName,
		CarPlate:           res.CarPlate,
		CustomerName:       res.CustomerName,
		CustomerEmail:      res.CustomerEmail,
		PickupDate:         res.PickupDate,
		ReturnDate:         res.ReturnDate,
		LicenseNumber:      req.LicenseNumber,
		LicenseExpiry:      req.LicenseExpiry,
		InsuranceAccepted:  req.InsuranceAccepted,
		InitialMileage:     req.InitialMileage,
		DailyRateCents:     res.DailyRateCents,
		BaseAmountCents:    res.TotalAmountCents,
		InsuranceCostCents: billing.InsuranceCost(days, req.InsuranceAccepted),
		Status:             domain.RentalStatusActive,
		PickedUpAt:         time.Now(),
	}

	err = s.store.Transact(ctx, func(tx repository.Store) error {
		if err := tx.Rentals().Create(ctx, rental); err != nil {
			return err
		}
		activated := *res
		activated.Status = domain.ReservationStatusActive
		activated.RentalID = &rental.ID
		return tx.Reservations().Update(ctx, &activated)
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) FindActiveRental(ctx context.Context, key string) (*domain.Rental, error) {
	return findRental(ctx, s.store.Rentals(), key)
}

// findRental resolves a lookup key as a rental id first and a license
// plate second.
func findRental(ctx context.Context, repo repository.RentalRepository, key string) (*domain.Rental, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: rental id or license plate is required", domain.ErrValidation)
	}

	rental, err := repo.GetByID(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return repo.GetByPlate(ctx, key)
	}
	return rental, err
}
