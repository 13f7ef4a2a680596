package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/repository"
)

type rentalRepository struct {
	q querier
}

const rentalColumns = `id, reservation_id, car_id, car_name, car_plate, customer_name, customer_email,
	pickup_date, return_date, license_number, license_expiry, insurance_accepted, initial_mileage,
	daily_rate_cents, base_amount_cents, insurance_cost_cents, status, return_id, picked_up_at`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (` + rentalColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.ExecContext(ctx, query,
		rt.ID, rt.ReservationID, rt.CarID, rt.CarName, rt.CarPlate, rt.CustomerName, rt.CustomerEmail,
		rt.PickupDate, rt.ReturnDate, rt.LicenseNumber, rt.LicenseExpiry, rt.InsuranceAccepted,
		rt.InitialMileage, rt.DailyRateCents, rt.BaseAmountCents, rt.InsuranceCostCents, rt.Status,
		rt.ReturnID, rt.PickedUpAt)
	return err
}

func scanRental(row *sql.Row) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.ReservationID, &rt.CarID, &rt.CarName, &rt.CarPlate, &rt.CustomerName,
		&rt.CustomerEmail, &rt.PickupDate, &rt.ReturnDate, &rt.LicenseNumber, &rt.LicenseExpiry,
		&rt.InsuranceAccepted, &rt.InitialMileage, &rt.DailyRateCents, &rt.BaseAmountCents,
		&rt.InsuranceCostCents, &rt.Status, &rt.ReturnID, &rt.PickedUpAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE lower(id) = lower($1)`
	rt, err := scanRental(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: rental %s", domain.ErrNotFound, id)
	}
	return rt, err
}

func (r *rentalRepository) GetByPlate(ctx context.Context, plate string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE replace(replace(lower(car_plate), '-', ''), ' ', '') = $1 ORDER BY seq ASC LIMIT 1`
	rt, err := scanRental(r.q.QueryRowContext(ctx, query, repository.NormalizePlate(plate)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: rental for plate %s", domain.ErrNotFound, plate)
	}
	return rt, err
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status = $1, return_id = $2 WHERE id = $3`
	result, err := r.q.ExecContext(ctx, query, rt.Status, rt.ReturnID, rt.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: rental %s", domain.ErrNotFound, rt.ID)
	}
	return nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY seq ASC`
	return r.list(ctx, query)
}

func (r *rentalRepository) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 ORDER BY seq ASC`
	return r.list(ctx, query, status)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.ReservationID, &rt.CarID, &rt.CarName, &rt.CarPlate, &rt.CustomerName,
			&rt.CustomerEmail, &rt.PickupDate, &rt.ReturnDate, &rt.LicenseNumber, &rt.LicenseExpiry,
			&rt.InsuranceAccepted, &rt.InitialMileage, &rt.DailyRateCents, &rt.BaseAmountCents,
			&rt.InsuranceCostCents, &rt.Status, &rt.ReturnID, &rt.PickedUpAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
