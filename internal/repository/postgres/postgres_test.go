package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/repository"
	"github.com/lululale/zoom-car-rental/internal/repository/postgres"
)

var reservationCols = []string{
	"id", "car_id", "car_name", "car_plate", "customer_name", "customer_email", "customer_phone",
	"pickup_date", "return_date", "daily_rate_cents", "total_amount_cents", "card_last4", "status",
	"rental_id", "created_at",
}

var rentalCols = []string{
	"id", "reservation_id", "car_id", "car_name", "car_plate", "customer_name", "customer_email",
	"pickup_date", "return_date", "license_number", "license_expiry", "insurance_accepted",
	"initial_mileage", "daily_rate_cents", "base_amount_cents", "insurance_cost_cents", "status",
	"return_id", "picked_up_at",
}

func newStore(t *testing.T) (*postgres.Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return postgres.NewStore(db), mock
}

func TestReservationRepository_Create(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	res := &domain.Reservation{
		ID:               "RES-1704067200000-3f9a2c1b",
		CarID:            "CAR001",
		CarName:          "Toyota Camry",
		CarPlate:         "ABC-1234",
		CustomerName:     "Dana Whitfield",
		CustomerEmail:    "dana@example.com",
		CustomerPhone:    "555-0134",
		PickupDate:       "2024-01-01",
		ReturnDate:       "2024-01-04",
		DailyRateCents:   4500,
		TotalAmountCents: 13500,
		CardLast4:        "4242",
		Status:           domain.ReservationStatusConfirmed,
		CreatedAt:        time.Now(),
	}

	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(res.ID, res.CarID, res.CarName, res.CarPlate, res.CustomerName, res.CustomerEmail,
			res.CustomerPhone, res.PickupDate, res.ReturnDate, res.DailyRateCents, res.TotalAmountCents,
			res.CardLast4, res.Status, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Reservations().Create(ctx, res)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_GetByID(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(reservationCols).
			AddRow("RES-1704067200000-3f9a2c1b", "CAR001", "Toyota Camry", "ABC-1234", "Dana Whitfield",
				"dana@example.com", "555-0134", "2024-01-01", "2024-01-04", 4500, 13500, "4242",
				"confirmed", nil, time.Now())

		mock.ExpectQuery("FROM reservations WHERE lower\\(id\\) = lower\\(\\$1\\)").
			WithArgs("RES-1704067200000-3f9a2c1b").
			WillReturnRows(rows)

		res, err := store.Reservations().GetByID(ctx, "RES-1704067200000-3f9a2c1b")
		require.NoError(t, err)
		assert.Equal(t, "Toyota Camry", res.CarName)
		assert.Equal(t, domain.ReservationStatusConfirmed, res.Status)
		assert.Nil(t, res.RentalID)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("FROM reservations WHERE lower\\(id\\) = lower\\(\\$1\\)").
			WithArgs("RES-0-deadbeef").
			WillReturnRows(sqlmock.NewRows(reservationCols))

		_, err := store.Reservations().GetByID(ctx, "RES-0-deadbeef")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReservationRepository_Update(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	rentalID := "RENT-1704153600000-8b1f0d2e"
	res := &domain.Reservation{
		ID:       "RES-1704067200000-3f9a2c1b",
		Status:   domain.ReservationStatusActive,
		RentalID: &rentalID,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(res.Status, res.RentalID, res.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, store.Reservations().Update(ctx, res))
	})

	t.Run("Missing record", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(res.Status, res.RentalID, res.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.Reservations().Update(ctx, res)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentalRepository_GetByPlate(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	rows := sqlmock.NewRows(rentalCols).
		AddRow("RENT-1704153600000-8b1f0d2e", "RES-1704067200000-3f9a2c1b", "CAR001", "Toyota Camry",
			"ABC-1234", "Dana Whitfield", "dana@example.com", "2024-01-01", "2024-01-04", "D1234567",
			"2027-06-30", true, 42000, 4500, 13500, 6000, "active", nil, time.Now())

	// The lookup key is normalized before it reaches the database.
	mock.ExpectQuery("replace\\(replace\\(lower\\(car_plate\\)").
		WithArgs("abc1234").
		WillReturnRows(rows)

	rental, err := store.Rentals().GetByPlate(ctx, "ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, "RENT-1704153600000-8b1f0d2e", rental.ID)
	assert.Equal(t, domain.RentalStatusActive, rental.Status)
}

func TestStore_Transact(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit on success", func(t *testing.T) {
		store, mock := newStore(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.Transact(ctx, func(tx repository.Store) error {
			return tx.Reservations().Update(ctx, &domain.Reservation{
				ID:     "RES-1704067200000-3f9a2c1b",
				Status: domain.ReservationStatusActive,
			})
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback on error", func(t *testing.T) {
		store, mock := newStore(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := store.Transact(ctx, func(tx repository.Store) error {
			return errors.New("boom")
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
