package mysql

import (
	"context"

	"github.com/shopspring/decimal"

	loanDomain "fundo-loan-service/internal/domain/loan"
)

// Seed inserts the demo loans on an empty table. Safe to run on every
// startup.
func (r *LoanRepository) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []loanDomain.Loan{
		{
			ApplicantName:  "Maria Silva",
			Amount:         decimal.RequireFromString("1500.00"),
			CurrentBalance: decimal.RequireFromString("500.00"),
			Status:         loanDomain.StatusActive,
			Version:        1,
		},
		{
			ApplicantName:  "Juan Perez",
			Amount:         decimal.RequireFromString("2000.00"),
			CurrentBalance: decimal.RequireFromString("0.00"),
			Status:         loanDomain.StatusPaid,
			Version:        1,
		},
	}
	return r.db.WithContext(ctx).Create(&seed).Error
}
