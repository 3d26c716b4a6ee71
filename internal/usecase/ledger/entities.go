package ledger

import (
	"time"

	"employee-loan-service/internal/domain/identity"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	Requester  identity.Actor
	LoanTypeID string
	Amount     decimal.Decimal
	Remarks    string
}

// DecisionInput carries an approve or reject request. Reason is only
// meaningful for rejections.
type DecisionInput struct {
	LoanID  string
	Decider identity.Actor
	Reason  string
}

type LoanDTO struct {
	LoanID             string          `json:"loan_id"`
	RequesterID        string          `json:"requester_id"`
	LoanTypeID         string          `json:"loan_type_id"`
	LoanTypeName       string          `json:"loan_type_name"`
	Principal          decimal.Decimal `json:"principal"`
	Status             string          `json:"status"`
	ApplicationDate    time.Time       `json:"application_date"`
	ApprovedDate       *time.Time      `json:"approved_date,omitempty"`
	DeciderID          string          `json:"decider_id,omitempty"`
	Remarks            string          `json:"remarks,omitempty"`
	RejectionReason    string          `json:"rejection_reason,omitempty"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	CreatedAt          time.Time       `json:"created_at"`
}
