// Package repayment owns money movement against a loan: it validates a
// proposed payment against the current outstanding balance, records it
// immutably, and flips the loan to completed when the balance hits zero.
package repayment

import (
	"context"
	"fmt"
	"time"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/domain/loan"
	domainRepayment "employee-loan-service/internal/domain/repayment"
	"employee-loan-service/internal/domain/uow"
	"employee-loan-service/pkg/id"
)

type Usecase struct {
	loans      loan.Repository
	repayments domainRepayment.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(loans loan.Repository, repays domainRepayment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, repayments: repays, uow: tx}
}

// Pay applies one payment. The repayment insert, the balance it implies, and
// any auto-completion commit as one unit against a locked loan row — either
// all of it lands or none of it does.
func (u *Usecase) Pay(ctx context.Context, in PayInput) (*RepaymentDTO, error) {
	if in.Processor.Role != identity.RoleAccountant {
		return nil, fmt.Errorf("%w: only accountants may record payments", identity.ErrForbidden)
	}
	var dto *RepaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		// Completed loans are accepted defensively; their zero balance makes
		// any further payment fail the overpayment check below.
		if l.Status != loan.StatusApproved && l.Status != loan.StatusCompleted {
			return fmt.Errorf("%w: cannot pay a %s loan", loan.ErrInvalidTransition, l.Status)
		}
		paid, err := r.Repayments.TotalPaidByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		balance := l.OutstandingBalance(paid)
		if in.Amount.Sign() <= 0 {
			return fmt.Errorf("%w: amount must be positive", loan.ErrValidation)
		}
		if in.Amount.GreaterThan(balance) {
			return fmt.Errorf("%w: payment %s exceeds outstanding balance %s",
				loan.ErrValidation, in.Amount, balance)
		}

		resulting := balance.Sub(in.Amount)
		now := time.Now().UTC()
		rp := &domainRepayment.Repayment{
			RepaymentID: id.NewID32(),
			LoanID:      l.ID,
			ProcessorID: in.Processor.UserID,
			AmountPaid:  in.Amount,
			Balance:     resulting,
			PaymentDate: now,
		}
		if err := r.Repayments.Create(ctx, rp); err != nil {
			return err
		}
		if resulting.IsZero() {
			l.Status = loan.StatusCompleted
			l.StatusUpdatedAt = now
			if err := r.Loans.Save(ctx, l); err != nil {
				return err // ErrConflict rolls the repayment back with it
			}
		}
		dto = newDTO(rp, l.LoanID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, repaymentID string) (*RepaymentDTO, error) {
	rp, err := u.repayments.GetByRepaymentID(ctx, repaymentID)
	if err != nil {
		return nil, err
	}
	l, err := u.loans.GetByID(ctx, rp.LoanID)
	if err != nil {
		return nil, err
	}
	return newDTO(rp, l.LoanID), nil
}

// ListByLoan returns a loan's repayments in payment order.
func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]RepaymentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	rps, err := u.repayments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]RepaymentDTO, 0, len(rps))
	for i := range rps {
		out = append(out, *newDTO(&rps[i], l.LoanID))
	}
	return out, nil
}

func (u *Usecase) ListAll(ctx context.Context) ([]RepaymentDTO, error) {
	rps, err := u.repayments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	publicID := make(map[uint64]string, len(loans))
	for i := range loans {
		publicID[loans[i].ID] = loans[i].LoanID
	}
	out := make([]RepaymentDTO, 0, len(rps))
	for i := range rps {
		out = append(out, *newDTO(&rps[i], publicID[rps[i].LoanID]))
	}
	return out, nil
}

func newDTO(rp *domainRepayment.Repayment, publicLoanID string) *RepaymentDTO {
	return &RepaymentDTO{
		RepaymentID: rp.RepaymentID,
		LoanID:      publicLoanID,
		ProcessorID: rp.ProcessorID,
		AmountPaid:  rp.AmountPaid,
		Balance:     rp.Balance,
		PaymentDate: rp.PaymentDate,
	}
}
