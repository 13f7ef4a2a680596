// Package file implements the ledger store over a single JSON document.
// The four collections are loaded wholesale at startup and written back
// wholesale after each mutation, which keeps the on-disk state a faithful
// snapshot of the in-memory ledger at every step.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lululale/zoom-car-rental/internal/domain"
	"github.com/lululale/zoom-car-rental/internal/repository"
)

// ledger is the persisted document. Collections stay non-nil so the
// serialized form is stable from the first write on.
type ledger struct {
	Reservations []domain.Reservation `json:"reservations"`
	Rentals      []domain.Rental      `json:"rentals"`
	Returns      []domain.Return      `json:"returns"`
	Inspections  []domain.Inspection  `json:"inspections"`
}

func newLedger() *ledger {
	return &ledger{
		Reservations: []domain.Reservation{},
		Rentals:      []domain.Rental{},
		Returns:      []domain.Return{},
		Inspections:  []domain.Inspection{},
	}
}

func (l *ledger) clone() *ledger {
	return &ledger{
		Reservations: append([]domain.Reservation{}, l.Reservations...),
		Rentals:      append([]domain.Rental{}, l.Rentals...),
		Returns:      append([]domain.Return{}, l.Returns...),
		Inspections:  append([]domain.Inspection{}, l.Inspections...),
	}
}

// Store holds the ledger in memory and mirrors it to path. A Store with
// an empty path is a transaction view whose writes stay in memory until
// the enclosing Transact commits them.
type Store struct {
	mu   sync.Mutex
	path string
	data *ledger
}

// Open loads the ledger document at path, starting empty when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: newLedger()}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return nil, fmt.Errorf("failed to parse ledger file %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) Reservations() repository.ReservationRepository { return &reservationRepo{s} }
func (s *Store) Rentals() repository.RentalRepository           { return &rentalRepo{s} }
func (s *Store) Returns() repository.ReturnRepository           { return &returnRepo{s} }
func (s *Store) Inspections() repository.InspectionRepository   { return &inspectionRepo{s} }

// Transact applies fn to a clone of the ledger and only swaps (and
// persists) the clone when fn succeeds, so a failed transition leaves
// neither of its paired writes behind.
func (s *Store) Transact(ctx context.Context, fn func(repository.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Store{data: s.data.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	if s.path != "" {
		if err := writeLedger(s.path, tx.data); err != nil {
			return err
		}
	}
	s.data = tx.data
	return nil
}

// apply runs a single mutation with the same commit discipline as
// Transact: mutate a clone, persist, then swap.
func (s *Store) apply(mutate func(*ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.clone()
	if err := mutate(next); err != nil {
		return err
	}
	if s.path != "" {
		if err := writeLedger(s.path, next); err != nil {
			return err
		}
	}
	s.data = next
	return nil
}

// read runs fn against the current ledger under the lock.
func (s *Store) read(fn func(*ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// writeLedger persists via temp file plus rename so a crash mid-write
// cannot truncate the ledger.
func writeLedger(path string, l *ledger) error {
	raw, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}
