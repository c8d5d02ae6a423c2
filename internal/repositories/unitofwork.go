package repositories

import (
	"context"
	"errors"

	"toursapp/internal/domain/models"

	"github.com/uptrace/bun"
)

// ErrClosed is returned when changes are staged or committed on a unit of
// work that has already been closed.
var ErrClosed = errors.New("unit of work is closed")

type change func(ctx context.Context, tx bun.IDB) error

// journal collects staged changes from every repository belonging to one
// unit of work, in staging order.
type journal struct {
	changes []change
	closed  bool
}

func (j *journal) stage(c change) error {
	if j.closed {
		return ErrClosed
	}
	j.changes = append(j.changes, c)
	return nil
}

// UnitOfWork scopes one request's data access: all four repositories share a
// single change journal, and Complete applies the journal atomically in one
// transaction. A unit of work must never be shared across requests.
type UnitOfWork struct {
	db      *bun.DB
	journal *journal

	Users        *Repository[models.User, *models.User]
	Destinations *Repository[models.Destination, *models.Destination]
	Tours        *Repository[models.Tour, *models.Tour]
	Bookings     *Repository[models.Booking, *models.Booking]
}

// NewUnitOfWork builds all repositories up front, each bound to the shared
// journal. Construction fails if any model lacks exactly one primary key.
func NewUnitOfWork(db *bun.DB) (*UnitOfWork, error) {
	j := &journal{}

	users, err := newRepository[models.User](db, j)
	if err != nil {
		return nil, err
	}
	destinations, err := newRepository[models.Destination](db, j)
	if err != nil {
		return nil, err
	}
	tours, err := newRepository[models.Tour](db, j)
	if err != nil {
		return nil, err
	}
	bookings, err := newRepository[models.Booking](db, j)
	if err != nil {
		return nil, err
	}

	return &UnitOfWork{
		db:           db,
		journal:      j,
		Users:        users,
		Destinations: destinations,
		Tours:        tours,
		Bookings:     bookings,
	}, nil
}

// Complete applies every staged change in one transaction. A successful
// commit closes the unit of work; further staging or commits return
// ErrClosed, reads stay available. On failure the transaction rolls back
// and the journal is discarded; the caller reloads and restages on a fresh
// unit of work. A conflict from a stale update surfaces as a domain
// ConflictError, and the caller must re-check existence to distinguish a
// concurrently deleted row from a concurrently modified one.
func (u *UnitOfWork) Complete(ctx context.Context) error {
	if u.journal.closed {
		return ErrClosed
	}
	changes := u.journal.changes
	u.journal.changes = nil
	if len(changes) == 0 {
		u.journal.closed = true
		return nil
	}
	err := u.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, apply := range changes {
			if err := apply(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	u.journal.closed = true
	return nil
}

// Close discards any staged changes and marks the unit of work unusable.
// Safe to call more than once.
func (u *UnitOfWork) Close() {
	u.journal.closed = true
	u.journal.changes = nil
}
