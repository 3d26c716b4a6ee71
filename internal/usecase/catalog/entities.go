package catalog

import (
	"github.com/shopspring/decimal"
)

type CreateLoanTypeInput struct {
	Name        string
	Description string
	MaxAmount   decimal.Decimal
}

// UpdateLoanTypeInput replaces all mutable fields, mirroring the PUT semantics
// of the catalog endpoint.
type UpdateLoanTypeInput struct {
	Name        string
	Description string
	MaxAmount   decimal.Decimal
}

type LoanTypeDTO struct {
	TypeID      string          `json:"type_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	MaxAmount   decimal.Decimal `json:"max_amount"`
}
