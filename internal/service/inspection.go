package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lululale/zoom-car-rental/internal/billing"
	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/repository"
)

type inspectionService struct {
	store repository.Store
}

func NewInspectionService(store repository.Store) InspectionService {
	return &inspectionService{store: store}
}

func (s *inspectionService) CompleteInspection(ctx context.Context, returnID string, req InspectionRequest) (*domain.Inspection, error) {
	ret, err := s.store.Returns().GetByID(ctx, strings.TrimSpace(returnID))
	if err != nil {
		return nil, err
	}
	if ret.Status != domain.ReturnStatusPendingInspection {
		return nil, fmt.Errorf("%w: return %s has already been inspected", domain.ErrInvalidState, ret.ID)
	}

	level, ok := domain.ParseDamageLevel(req.DamageLevel)
	if !ok {
		return nil, fmt.Errorf("%w: unknown damage level %q", domain.ErrValidation, req.DamageLevel)
	}
	if level != domain.DamageLevelNone && strings.TrimSpace(req.DamageDetails) == "" {
		return nil, fmt.Errorf("%w: damage details are required when damage is present", domain.ErrValidation)
	}

	damageCents, err := billing.DamageCharge(level, req.DamageChargeCents)
	if err != nil {
		return nil, err
	}

	expected, err := time.Parse(billing.DateLayout, ret.ExpectedReturnDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expected return date %q", domain.ErrValidation, ret.ExpectedReturnDate)
	}
	lateDays, lateFeeCents := billing.LateCharge(expected, ret.ActualReturnDate)
	fuelCents := billing.FuelCharge(ret.FuelLevel)

	finalCents, err := billing.FinalAmount(ret.BaseAmountCents, ret.InsuranceCostCents, damageCents, lateFeeCents, fuelCents)
	if err != nil {
		return nil, err
	}

	ins := &domain.Inspection{
		ID:                 domain.NewID(domain.IDPrefixInspection),
		ReturnID:           ret.ID,
		RentalID:           ret.RentalID,
		CarID:              ret.CarID,
		CarName:            ret.CarName,
		CustomerName:       ret.CustomerName,
		CustomerEmail:      ret.CustomerEmail,
		DamageLevel:        level,
		DamageDetails:      req.DamageDetails,
		DamageChargeCents:  damageCents,
		LateDays:           lateDays,
		LateFeeCents:       lateFeeCents,
		FuelChargeCents:    fuelCents,
		InspectorNotes:     req.InspectorNotes,
		BaseAmountCents:    ret.BaseAmountCents,
		InsuranceCostCents: ret.InsuranceCostCents,
		TotalChargesCents:  damageCents + lateFeeCents + fuelCents,
		FinalAmountCents:   finalCents,
		Status:             domain.InspectionStatusCompleted,
		InspectedAt:        time.Now(),
	}

	err = s.store.Transact(ctx, func(tx repository.Store) error {
		if err := tx.Inspections().Create(ctx, ins); err != nil {
			return err
		}
		inspected := *ret
		inspected.Status = domain.ReturnStatusInspected
		inspected.InspectionID = &ins.ID
		return tx.Returns().Update(ctx, &inspected)
	})
	if err != nil {
		return nil, err
	}
	return ins, nil
}
