package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive Status = "active"
	StatusPaid   Status = "paid"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrVersionConflict means a conditional write lost the optimistic
	// race: the row version changed between read and write. Callers must
	// re-read and retry; nothing is retried here.
	ErrVersionConflict = errors.New("loan was modified by another process")
)

type Loan struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"id"`
	ApplicantName  string          `gorm:"column:applicant_name;size:255;not null" json:"applicantName"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	CurrentBalance decimal.Decimal `gorm:"column:current_balance;type:decimal(18,2);not null" json:"currentBalance"`
	Status         Status          `gorm:"column:status;type:enum('active','paid');default:'active'" json:"status"`
	// Version changes on every successful mutation and is compared on
	// conditional writes. Never serialized to the boundary.
	Version   uint64    `gorm:"column:version;not null;default:1" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }
