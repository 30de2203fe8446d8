package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "fundo-loan-service/internal/domain/loan"
)

// minAmount is the smallest currency unit a loan can be created with.
var minAmount = decimal.New(1, -2) // 0.01

type Usecase struct {
	repo domain.Repository
	// paymentDelay widens the window between validation and the
	// conditional write. Timing only; used to exercise the race.
	paymentDelay time.Duration
}

type Option func(*Usecase)

// WithPaymentDelay inserts an artificial pause before the conditional
// write of ApplyPayment.
func WithPaymentDelay(d time.Duration) Option {
	return func(u *Usecase) { u.paymentDelay = d }
}

func NewUsecase(r domain.Repository, opts ...Option) *Usecase {
	u := &Usecase{repo: r}
	for _, o := range opts {
		o(u)
	}
	return u
}

// validateNewLoan checks the whole candidate record at once and collects
// every violation, so relational rules (balance vs amount) report next
// to per-field ones.
func validateNewLoan(in CreateLoanInput) *ValidationError {
	var fields []FieldError
	if in.ID != 0 {
		fields = append(fields, FieldError{Field: "id", Message: "the id of the loan must be zero"})
	}
	if strings.TrimSpace(in.ApplicantName) == "" {
		fields = append(fields, FieldError{Field: "applicantName", Message: "the applicant name can not be empty"})
	}
	if in.Amount.Cmp(minAmount) < 0 {
		fields = append(fields, FieldError{Field: "amount", Message: "the amount must be greater than zero"})
	}
	if in.Status != "" && in.Status != string(domain.StatusActive) {
		fields = append(fields, FieldError{Field: "status", Message: "the status must be active"})
	}
	if !in.CurrentBalance.Equal(in.Amount) {
		fields = append(fields, FieldError{Field: "currentBalance", Message: "the current balance must be equal to the amount"})
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if verr := validateNewLoan(in); verr != nil {
		return nil, verr
	}

	l := &domain.Loan{
		ApplicantName:  strings.TrimSpace(in.ApplicantName),
		Amount:         in.Amount,
		CurrentBalance: in.Amount, // creation invariant, regardless of input
		Status:         domain.StatusActive,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create loan: %w", err)
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*LoanDTO, error) {
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out, nil
}

// ApplyPayment deducts amount from the loan balance, flipping status to
// paid when the balance reaches zero. The validation runs against the
// balance snapshot read here; the conditional write on the row version
// is what makes the whole read-validate-write atomic against concurrent
// payments. On a lost race the repo returns ErrVersionConflict and the
// caller must re-read and retry.
func (u *Usecase) ApplyPayment(ctx context.Context, id uint64, amount decimal.Decimal) (*LoanDTO, error) {
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if !amount.IsPositive() {
		return nil, newFieldError("paymentAmount", "payment amount must be greater than zero")
	}
	if amount.GreaterThan(l.CurrentBalance) {
		return nil, newFieldError("paymentAmount", "payment exceeds current balance")
	}

	balance := l.CurrentBalance.Sub(amount)
	if balance.Sign() <= 0 {
		balance = decimal.Zero
		l.Status = domain.StatusPaid
	}
	l.CurrentBalance = balance

	if u.paymentDelay > 0 {
		select {
		case <-time.After(u.paymentDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := u.repo.UpdateBalance(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		ID:             l.ID,
		ApplicantName:  l.ApplicantName,
		Amount:         l.Amount,
		CurrentBalance: l.CurrentBalance,
		Status:         string(l.Status),
	}
}
