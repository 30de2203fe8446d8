package loan

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateLoanInput carries the whole candidate record as bound from the
// request. Cross-field rules (balance must equal amount, status must be
// active, id must be unassigned) are checked together over this struct.
type CreateLoanInput struct {
	ID             uint64          `json:"id"`
	ApplicantName  string          `json:"applicantName"`
	Amount         decimal.Decimal `json:"amount"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         string          `json:"status"`
}

type LoanDTO struct {
	ID             uint64          `json:"id"`
	ApplicantName  string          `json:"applicantName"`
	Amount         decimal.Decimal `json:"amount"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         string          `json:"status"`
}

// MarshalJSON renders the monetary fields as bare JSON numbers with two
// decimal places (the column type is decimal(18,2)); shopspring/decimal
// would otherwise quote them as strings.
func (d LoanDTO) MarshalJSON() ([]byte, error) {
	type wire struct {
		ID             uint64          `json:"id"`
		ApplicantName  string          `json:"applicantName"`
		Amount         json.RawMessage `json:"amount"`
		CurrentBalance json.RawMessage `json:"currentBalance"`
		Status         string          `json:"status"`
	}
	return json.Marshal(wire{
		ID:             d.ID,
		ApplicantName:  d.ApplicantName,
		Amount:         json.RawMessage(d.Amount.StringFixed(2)),
		CurrentBalance: json.RawMessage(d.CurrentBalance.StringFixed(2)),
		Status:         d.Status,
	})
}
