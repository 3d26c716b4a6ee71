package repayment

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, r *Repayment) error
	GetByRepaymentID(ctx context.Context, repaymentID string) (*Repayment, error)
	// ListByLoanID returns repayments in payment order (oldest first).
	ListByLoanID(ctx context.Context, loanID uint64) ([]Repayment, error)
	ListAll(ctx context.Context) ([]Repayment, error)
	// TotalPaidByLoanID sums amount_paid over a single loan (zero when none).
	TotalPaidByLoanID(ctx context.Context, loanID uint64) (decimal.Decimal, error)
	// TotalPaidByLoanIDs sums per loan in one query; loans with no repayments
	// are absent from the map.
	TotalPaidByLoanIDs(ctx context.Context, loanIDs []uint64) (map[uint64]decimal.Decimal, error)
	// DeleteByLoanID cascades a loan deletion to its repayments.
	DeleteByLoanID(ctx context.Context, loanID uint64) error
}
