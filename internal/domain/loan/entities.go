package loan

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Terminal reports whether no further transition may leave the status.
func (s Status) Terminal() bool { return s == StatusRejected || s == StatusCompleted }

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// DefaultRejectionReason is recorded when a rejecting officer gives no reason.
const DefaultRejectionReason = "No reason provided"

// Loan is the aggregate root of the ledger. RequesterID, LoanTypeID and
// Principal never change after creation; everything financial about the loan
// is derived from Principal minus the sum of its repayments.
type Loan struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	RequesterID     string          `gorm:"size:32;index:idx_loans_requester_active" json:"requester_id"`
	LoanTypeID      uint64          `gorm:"column:loan_type_id;not null;index" json:"-"`
	Principal       decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	Status          Status          `gorm:"type:enum('pending','approved','rejected','completed');default:'pending'" json:"status"`
	ApplicationDate time.Time       `gorm:"column:application_date" json:"application_date"`
	ApprovedDate    *time.Time      `gorm:"column:approved_date" json:"approved_date,omitempty"`
	DeciderID       string          `gorm:"size:32;column:decider_id" json:"decider_id,omitempty"`
	Remarks         string          `gorm:"type:text" json:"remarks,omitempty"`
	RejectionReason string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	// Version guards against lost updates: Save only applies when the stored
	// version still matches, then increments it.
	Version         uint64         `gorm:"not null;default:1" json:"-"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// OutstandingBalance is the amount still owed given the cumulative repaid
// total. Never stored; recomputed from the repayments table.
func (l *Loan) OutstandingBalance(totalPaid decimal.Decimal) decimal.Decimal {
	return l.Principal.Sub(totalPaid)
}
