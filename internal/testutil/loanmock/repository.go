package loanmock

import (
	"context"

	domain "fundo-loan-service/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only set the methods a test needs.
type Repo struct {
	CreateFn        func(ctx context.Context, l *domain.Loan) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListFn          func(ctx context.Context) ([]domain.Loan, error)
	UpdateBalanceFn func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled // or errors.New("not implemented")
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) UpdateBalance(ctx context.Context, l *domain.Loan) error {
	if m.UpdateBalanceFn != nil {
		return m.UpdateBalanceFn(ctx, l)
	}
	return nil
}
