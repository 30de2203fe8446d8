package loan

import "context"

type Repository interface {
	// Create inserts a new loan; the store assigns ID and Version.
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	// UpdateBalance persists CurrentBalance and Status with a write
	// conditional on l.Version matching the stored row. On success
	// l.Version is bumped in place; on a stale version it returns
	// ErrVersionConflict and writes nothing.
	UpdateBalance(ctx context.Context, l *Loan) error
}
