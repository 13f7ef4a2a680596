// Package postgres implements the ledger store on PostgreSQL. Each
// lifecycle transition runs inside a database transaction so the
// downstream append and the upstream status patch commit together.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/lululale/zoom-car-rental/internal/repository"
)

// querier is satisfied by both *sql.DB and *sql.Tx, letting the same
// repository code run inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	q  querier
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

func (s *Store) Reservations() repository.ReservationRepository { return &reservationRepository{s.q} }
func (s *Store) Rentals() repository.RentalRepository           { return &rentalRepository{s.q} }
func (s *Store) Returns() repository.ReturnRepository           { return &returnRepository{s.q} }
func (s *Store) Inspections() repository.InspectionRepository   { return &inspectionRepository{s.q} }

func (s *Store) Transact(ctx context.Context, fn func(repository.Store) error) error {
	if _, ok := s.q.(*sql.Tx); ok {
		// Already inside a transaction.
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(&Store{db: s.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
