package repayment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("repayment not found")

// Repayment is immutable once created. Balance is the loan's outstanding
// balance after this payment was applied — derivable, but stored for audit.
// Insertion order (numeric PK) is payment order.
type Repayment struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	RepaymentID string `gorm:"size:32;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	// FK to loans.id (numeric); back-reference only, never traversed for
	// anything but lookup and cascade delete.
	LoanID      uint64          `gorm:"column:loan_id;not null;index" json:"-"`
	ProcessorID string          `gorm:"size:32;column:processor_id" json:"processor_id"`
	AmountPaid  decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount_paid"`
	Balance     decimal.Decimal `gorm:"type:decimal(18,2)" json:"balance"`
	PaymentDate time.Time       `gorm:"column:payment_date" json:"payment_date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Repayment) TableName() string { return "repayments" }
