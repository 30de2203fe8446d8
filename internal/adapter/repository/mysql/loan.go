package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "fundo-loan-service/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *LoanRepository) Tx(ctx context.Context, fn func(repo loanDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LoanRepository{db: tx})
	})
}

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	if l.Version == 0 {
		l.Version = 1
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Find(&out)
	return out, res.Error
}

// UpdateBalance is the conditional write behind ApplyPayment: the UPDATE
// matches on id AND version, so a row mutated since the caller's read is
// simply not matched. Loans are never deleted, so zero affected rows
// always means a stale version, not a missing row.
func (r *LoanRepository) UpdateBalance(ctx context.Context, l *loanDomain.Loan) error {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("id = ? AND version = ?", l.ID, l.Version).
		Updates(map[string]any{
			"current_balance": l.CurrentBalance,
			"status":          l.Status,
			"version":         l.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrVersionConflict
	}
	l.Version++
	return nil
}
