// Package report aggregates the ledger's read projections for admins. It
// never mutates anything.
package report

import (
	"context"
	"fmt"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/domain/loan"
	"employee-loan-service/internal/domain/repayment"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	loans      loan.Repository
	repayments repayment.Repository
}

func NewUsecase(loans loan.Repository, repays repayment.Repository) *Usecase {
	return &Usecase{loans: loans, repayments: repays}
}

type SummaryDTO struct {
	TotalLoans     int             `json:"total_loans"`
	PendingLoans   int             `json:"pending_loans"`
	ApprovedLoans  int             `json:"approved_loans"`
	RejectedLoans  int             `json:"rejected_loans"`
	CompletedLoans int             `json:"completed_loans"`
	TotalDisbursed decimal.Decimal `json:"total_disbursed"`
}

type OutstandingLoanDTO struct {
	LoanID             string          `json:"loan_id"`
	RequesterID        string          `json:"requester_id"`
	Principal          decimal.Decimal `json:"principal"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

type OutstandingDTO struct {
	TotalOutstandingLoans  int                  `json:"total_outstanding_loans"`
	TotalOutstandingAmount decimal.Decimal      `json:"total_outstanding_amount"`
	Loans                  []OutstandingLoanDTO `json:"loans"`
}

func (u *Usecase) Summary(ctx context.Context, actor identity.Actor) (*SummaryDTO, error) {
	if actor.Role != identity.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may read reports", identity.ErrForbidden)
	}
	ls, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := &SummaryDTO{TotalLoans: len(ls), TotalDisbursed: decimal.Zero}
	for i := range ls {
		switch ls[i].Status {
		case loan.StatusPending:
			out.PendingLoans++
		case loan.StatusApproved:
			out.ApprovedLoans++
		case loan.StatusRejected:
			out.RejectedLoans++
		case loan.StatusCompleted:
			out.CompletedLoans++
		}
		// Disbursed = principal ever paid out: approved and completed loans.
		if ls[i].Status == loan.StatusApproved || ls[i].Status == loan.StatusCompleted {
			out.TotalDisbursed = out.TotalDisbursed.Add(ls[i].Principal)
		}
	}
	return out, nil
}

func (u *Usecase) Outstanding(ctx context.Context, actor identity.Actor) (*OutstandingDTO, error) {
	if actor.Role != identity.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may read reports", identity.ErrForbidden)
	}
	ls, err := u.loans.ListByStatus(ctx, loan.StatusApproved)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(ls))
	for i := range ls {
		ids = append(ids, ls[i].ID)
	}
	paidByLoan := map[uint64]decimal.Decimal{}
	if len(ids) > 0 {
		paidByLoan, err = u.repayments.TotalPaidByLoanIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	out := &OutstandingDTO{
		TotalOutstandingLoans:  len(ls),
		TotalOutstandingAmount: decimal.Zero,
		Loans:                  make([]OutstandingLoanDTO, 0, len(ls)),
	}
	for i := range ls {
		l := &ls[i]
		paid, ok := paidByLoan[l.ID]
		if !ok {
			paid = decimal.Zero
		}
		balance := l.OutstandingBalance(paid)
		out.TotalOutstandingAmount = out.TotalOutstandingAmount.Add(balance)
		out.Loans = append(out.Loans, OutstandingLoanDTO{
			LoanID:             l.LoanID,
			RequesterID:        l.RequesterID,
			Principal:          l.Principal,
			TotalPaid:          paid,
			OutstandingBalance: balance,
		})
	}
	return out, nil
}
