package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lululale/zoom-car-rental/internal/billing"
	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/fleet"
	"github.com/lululale/zoom-car-rental/internal/repository"
)

type reservationService struct {
	store   repository.Store
	catalog *fleet.Catalog
}

func NewReservationService(store repository.Store, catalog *fleet.Catalog) ReservationService {
	return &reservationService{store: store, catalog: catalog}
}

func (s *reservationService) BookReservation(ctx context.Context, req BookingRequest) (*domain.Reservation, error) {
	car, err := s.catalog.Get(req.CarID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return nil, fmt.Errorf("%w: customer email is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, fmt.Errorf("%w: customer phone is required", domain.ErrValidation)
	}

	cardLast4, err := cardLast4(req.CardNumber)
	if err != nil {
		return nil, err
	}

	pickup, err := time.Parse(billing.DateLayout, req.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pickup date %q", domain.ErrValidation, req.PickupDate)
	}
	ret, err := time.Parse(billing.DateLayout, req.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid return date %q", domain.ErrValidation, req.ReturnDate)
	}
	if ret.Before(pickup) {
		return nil, fmt.Errorf("%w: return date must not precede pickup date", domain.ErrValidation)
	}

	days, err := billing.DaysBetween(req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ID:               domain.NewID(domain.IDPrefixReservation),
		CarID:            car.ID,
		CarName:          car.Name,
		CarPlate:         car.Plate,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		PickupDate:       req.PickupDate,
		ReturnDate:       req.ReturnDate,
		DailyRateCents:   car.DailyRateCents,
		TotalAmountCents: billing.RentalTotal(days, car.DailyRateCents),
		CardLast4:        cardLast4,
		Status:           domain.ReservationStatusConfirmed,
		CreatedAt:        time.Now(),
	}

	if err := s.store.Reservations().Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *reservationService) FindReservation(ctx context.Context, key string) (*domain.Reservation, error) {
	return findReservation(ctx, s.store.Reservations(), key)
}

// findReservation resolves a lookup key as a reservation id first and a
// customer email second.
func findReservation(ctx context.Context, repo repository.ReservationRepository, key string) (*domain.Reservation, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: reservation id or email is required", domain.ErrValidation)
	}

	res, err := repo.GetByID(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return repo.GetByEmail(ctx, key)
	}
	return res, err
}

// cardLast4 reduces a card number to its last four digits. The full
// number is never stored anywhere.
func cardLast4(cardNumber string) (string, error) {
	var digits []rune
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return "", fmt.Errorf("%w: card number is required", domain.ErrValidation)
	}
	return string(digits[len(digits)-4:]), nil
}
