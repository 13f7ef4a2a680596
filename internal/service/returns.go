package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/repository"
)

type returnService struct {
	store repository.Store
}

func NewReturnService(store repository.Store) ReturnService {
	return &returnService{store: store}
}

func (s *returnService) ReturnVehicle(ctx context.Context, rentalKey string, req ReturnRequest) (*domain.Return, error) {
	rental, err := findRental(ctx, s.store.Rentals(), rentalKey)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, fmt.Errorf("%w: rental %s has already been returned", domain.ErrInvalidState, rental.ID)
	}

	fuel, ok := domain.ParseFuelLevel(req.FuelLevel)
	if !ok {
		return nil, fmt.Errorf("%w: unknown fuel level %q", domain.ErrValidation, req.FuelLevel)
	}
	if strings.TrimSpace(req.ReturnLocation) == "" {
		return nil, fmt.Errorf("%w: return location is required", domain.ErrValidation)
	}
	if req.FinalMileage < rental.InitialMileage {
		return nil, fmt.Errorf("%w: final mileage %d is below initial mileage %d",
			domain.ErrValidation, req.FinalMileage, rental.InitialMileage)
	}

	now := time.Now()
	ret := &domain.Return{
		ID:                 domain.NewID(domain.IDPrefixReturn),
		RentalID:           rental.ID,
		CarID:              rental.CarID,
		CarName:            rental.CarName,
		CarPlate:           rental.CarPlate,
		CustomerName:       rental.CustomerName,
		CustomerEmail:      rental.CustomerEmail,
		PickupDate:         rental.PickupDate,
		ExpectedReturnDate: rental.ReturnDate,
		ActualReturnDate:   now,
		ReturnLocation:     req.ReturnLocation,
		InitialMileage:     rental.InitialMileage,
		FinalMileage:       req.FinalMileage,
		MileageDriven:      req.FinalMileage - rental.InitialMileage,
		FuelLevel:          fuel,
		Notes:              req.Notes,
		BaseAmountCents:    rental.BaseAmountCents,
		InsuranceCostCents: rental.InsuranceCostCents,
		Status:             domain.ReturnStatusPendingInspection,
		ReturnedAt:         now,
	}

	err = s.store.Transact(ctx, func(tx repository.Store) error {
		if err := tx.Returns().Create(ctx, ret); err != nil {
			return err
		}
		closed := *rental
		closed.Status = domain.RentalStatusReturned
		closed.ReturnID = &ret.ID
		return tx.Rentals().Update(ctx, &closed)
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *returnService) PendingInspections(ctx context.Context) ([]domain.Return, error) {
	return s.store.Returns().ListPending(ctx)
}
