package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lululale/zoom-car-rental/internal/domain"
)

type returnRepository struct {
	q querier
}

const returnColumns = `id, rental_id, car_id, car_name, car_plate, customer_name, customer_email,
	pickup_date, expected_return_date, actual_return_date, return_location, initial_mileage,
	final_mileage, mileage_driven, fuel_level, notes, base_amount_cents, insurance_cost_cents,
	status, inspection_id, returned_at`

func (r *returnRepository) Create(ctx context.Context, ret *domain.Return) error {
	query := `INSERT INTO returns (` + returnColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.ExecContext(ctx, query,
		ret.ID, ret.RentalID, ret.CarID, ret.CarName, ret.CarPlate, ret.CustomerName, ret.CustomerEmail,
		ret.PickupDate, ret.ExpectedReturnDate, ret.ActualReturnDate, ret.ReturnLocation, ret.InitialMileage,
		ret.FinalMileage, ret.MileageDriven, ret.FuelLevel, ret.Notes, ret.BaseAmountCents,
		ret.InsuranceCostCents, ret.Status, ret.InspectionID, ret.ReturnedAt)
	return err
}

func (r *returnRepository) GetByID(ctx context.Context, id string) (*domain.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE lower(id) = lower($1)`
	ret := &domain.Return{}
	err := r.q.QueryRowContext(ctx, query, id).Scan(&ret.ID, &ret.RentalID, &ret.CarID, &ret.CarName,
		&ret.CarPlate, &ret.CustomerName, &ret.CustomerEmail, &ret.PickupDate, &ret.ExpectedReturnDate,
		&ret.ActualReturnDate, &ret.ReturnLocation, &ret.InitialMileage, &ret.FinalMileage,
		&ret.MileageDriven, &ret.FuelLevel, &ret.Notes, &ret.BaseAmountCents, &ret.InsuranceCostCents,
		&ret.Status, &ret.InspectionID, &ret.ReturnedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: return %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (r *returnRepository) Update(ctx context.Context, ret *domain.Return) error {
	query := `UPDATE returns SET status = $1, inspection_id = $2 WHERE id = $3`
	result, err := r.q.ExecContext(ctx, query, ret.Status, ret.InspectionID, ret.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: return %s", domain.ErrNotFound, ret.ID)
	}
	return nil
}

func (r *returnRepository) List(ctx context.Context) ([]domain.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns ORDER BY seq ASC`
	return r.list(ctx, query)
}

func (r *returnRepository) ListPending(ctx context.Context) ([]domain.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE status = $1 ORDER BY seq ASC`
	return r.list(ctx, query, domain.ReturnStatusPendingInspection)
}

func (r *returnRepository) list(ctx context.Context, query string, args ...any) ([]domain.Return, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Return
	for rows.Next() {
		var ret domain.Return
		if err := rows.Scan(&ret.ID, &ret.RentalID, &ret.CarID, &ret.CarName, &ret.CarPlate,
			&ret.CustomerName, &ret.CustomerEmail, &ret.PickupDate, &ret.ExpectedReturnDate,
			&ret.ActualReturnDate, &ret.ReturnLocation, &ret.InitialMileage, &ret.FinalMileage,
			&ret.MileageDriven, &ret.FuelLevel, &ret.Notes, &ret.BaseAmountCents, &ret.InsuranceCostCents,
			&ret.Status, &ret.InspectionID, &ret.ReturnedAt); err != nil {
			return nil, err
		}
		out = append(out, ret)
	}
	return out, rows.Err()
}
