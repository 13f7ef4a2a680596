package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lululale/zoom-car-rental/internal/domain"
)

type reservationRepository struct {
	q querier
}

const reservationColumns = `id, car_id, car_name, car_plate, customer_name, customer_email, customer_phone,
	pickup_date, return_date, daily_rate_cents, total_amount_cents, card_last4, status, rental_id, created_at`

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (` + reservationColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.ExecContext(ctx, query,
		res.ID, res.CarID, res.CarName, res.CarPlate, res.CustomerName, res.CustomerEmail, res.CustomerPhone,
		res.PickupDate, res.ReturnDate, res.DailyRateCents, res.TotalAmountCents, res.CardLast4, res.Status,
		res.RentalID, res.CreatedAt)
	return err
}

func scanReservation(row *sql.Row) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	err := row.Scan(&res.ID, &res.CarID, &res.CarName, &res.CarPlate, &res.CustomerName, &res.CustomerEmail,
		&res.CustomerPhone, &res.PickupDate, &res.ReturnDate, &res.DailyRateCents, &res.TotalAmountCents,
		&res.CardLast4, &res.Status, &res.RentalID, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE lower(id) = lower($1)`
	res, err := scanReservation(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: reservation %s", domain.ErrNotFound, id)
	}
	return res, err
}

func (r *reservationRepository) GetByEmail(ctx context.Context, email string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE lower(customer_email) = lower($1) ORDER BY seq ASC LIMIT 1`
	res, err := scanReservation(r.q.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: reservation for %s", domain.ErrNotFound, email)
	}
	return res, err
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations SET status = $1, rental_id = $2 WHERE id = $3`
	result, err := r.q.ExecContext(ctx, query, res.Status, res.RentalID, res.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: reservation %s", domain.ErrNotFound, res.ID)
	}
	return nil
}

func (r *reservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY seq ASC`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.CarID, &res.CarName, &res.CarPlate, &res.CustomerName,
			&res.CustomerEmail, &res.CustomerPhone, &res.PickupDate, &res.ReturnDate, &res.DailyRateCents,
			&res.TotalAmountCents, &res.CardLast4, &res.Status, &res.RentalID, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
