package repayment

import (
	"time"

	"employee-loan-service/internal/domain/identity"

	"github.com/shopspring/decimal"
)

type PayInput struct {
	LoanID    string
	Processor identity.Actor
	Amount    decimal.Decimal
}

type RepaymentDTO struct {
	RepaymentID string          `json:"repayment_id"`
	LoanID      string          `json:"loan_id"`
	ProcessorID string          `json:"processor_id"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	// Balance is the loan's outstanding balance after this payment.
	Balance     decimal.Decimal `json:"balance"`
	PaymentDate time.Time       `json:"payment_date"`
}
