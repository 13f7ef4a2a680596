package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lululale/zoom-car-rental/internal/domain"
)

type inspectionRepository struct {
	q querier
}

const inspectionColumns = `id, return_id, rental_id, car_id, car_name, customer_name, customer_email,
	damage_level, damage_details, damage_charge_cents, late_days, late_fee_cents, fuel_charge_cents,
	inspector_notes, base_amount_cents, insurance_cost_cents, total_charges_cents, final_amount_cents,
	status, inspected_at`

func (r *inspectionRepository) Create(ctx context.Context, ins *domain.Inspection) error {
	query := `INSERT INTO inspections (` + inspectionColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.ExecContext(ctx, query,
		ins.ID, ins.ReturnID, ins.RentalID, ins.CarID, ins.CarName, ins.CustomerName, ins.CustomerEmail,
		ins.DamageLevel, ins.DamageDetails, ins.DamageChargeCents, ins.LateDays, ins.LateFeeCents,
		ins.FuelChargeCents, ins.InspectorNotes, ins.BaseAmountCents, ins.InsuranceCostCents,
		ins.TotalChargesCents, ins.FinalAmountCents, ins.Status, ins.InspectedAt)
	return err
}

func scanInspection(row *sql.Row) (*domain.Inspection, error) {
	ins := &domain.Inspection{}
	err := row.Scan(&ins.ID, &ins.ReturnID, &ins.RentalID, &ins.CarID, &ins.CarName, &ins.CustomerName,
		&ins.CustomerEmail, &ins.DamageLevel, &ins.DamageDetails, &ins.DamageChargeCents, &ins.LateDays,
		&ins.LateFeeCents, &ins.FuelChargeCents, &ins.InspectorNotes, &ins.BaseAmountCents,
		&ins.InsuranceCostCents, &ins.TotalChargesCents, &ins.FinalAmountCents, &ins.Status, &ins.InspectedAt)
	if err != nil {
		return nil, err
	}
	return ins, nil
}

func (r *inspectionRepository) GetByID(ctx context.Context, id string) (*domain.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections WHERE lower(id) = lower($1)`
	ins, err := scanInspection(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: inspection %s", domain.ErrNotFound, id)
	}
	return ins, err
}

func (r *inspectionRepository) GetByReturnID(ctx context.Context, returnID string) (*domain.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections WHERE lower(return_id) = lower($1)`
	ins, err := scanInspection(r.q.QueryRowContext(ctx, query, returnID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: inspection for return %s", domain.ErrNotFound, returnID)
	}
	return ins, err
}

func (r *inspectionRepository) List(ctx context.Context) ([]domain.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections ORDER BY seq ASC`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Inspection
	for rows.Next() {
		var ins domain.Inspection
		if err := rows.Scan(&ins.ID, &ins.ReturnID, &ins.RentalID, &ins.CarID, &ins.CarName,
			&ins.CustomerName, &ins.CustomerEmail, &ins.DamageLevel, &ins.DamageDetails,
			&ins.DamageChargeCents, &ins.LateDays, &ins.LateFeeCents, &ins.FuelChargeCents,
			&ins.InspectorNotes, &ins.BaseAmountCents, &ins.InsuranceCostCents, &ins.TotalChargesCents,
			&ins.FinalAmountCents, &ins.Status, &ins.InspectedAt); err != nil {
			return nil, err
		}
		out = append(out, ins)
	}
	return out, rows.Err()
}
