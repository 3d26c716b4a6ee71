package loantype

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("loan type not found")
	ErrValidation = errors.New("validation failed")
)

// LoanType is an admin-managed catalog entry. Loans reference it read-only;
// the ledger only consults MaxAmount at submission time.
type LoanType struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	TypeID      string          `gorm:"size:32;uniqueIndex:ux_loan_types_type_id_active" json:"type_id"`
	Name        string          `gorm:"size:100;uniqueIndex:ux_loan_types_name_active" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	MaxAmount   decimal.Decimal `gorm:"type:decimal(18,2)" json:"max_amount"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (LoanType) TableName() string { return "loan_types" }
