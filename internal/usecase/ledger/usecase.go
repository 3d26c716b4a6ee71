// Package ledger owns the loan lifecycle state machine:
// pending → approved|rejected, approved → completed. Rejected and completed
// are terminal. Every transition runs inside a per-loan transaction.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/domain/loan"
	"employee-loan-service/internal/domain/loantype"
	"employee-loan-service/internal/domain/repayment"
	"employee-loan-service/internal/domain/uow"
	"employee-loan-service/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	loans      loan.Repository
	loanTypes  loantype.Repository
	repayments repayment.Repository
	uow        uow.UnitOfWork
}

// NewUsecase: reads go through the plain repos, transitions through the UoW.
func NewUsecase(loans loan.Repository, types loantype.Repository, repays repayment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, loanTypes: types, repayments: repays, uow: tx}
}

func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*LoanDTO, error) {
	if in.Requester.UserID == "" {
		return nil, fmt.Errorf("%w: missing requester", loan.ErrValidation)
	}
	lt, err := u.loanTypes.GetByTypeID(ctx, in.LoanTypeID)
	if err != nil {
		return nil, err
	}
	if in.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", loan.ErrValidation)
	}
	if in.Amount.GreaterThan(lt.MaxAmount) {
		return nil, fmt.Errorf("%w: amount exceeds maximum %s for loan type %q",
			loan.ErrValidation, lt.MaxAmount, lt.Name)
	}

	now := time.Now().UTC()
	l := &loan.Loan{
		LoanID:          id.NewID32(),
		RequesterID:     in.Requester.UserID,
		LoanTypeID:      lt.ID,
		Principal:       in.Amount,
		Status:          loan.StatusPending,
		ApplicationDate: now,
		Remarks:         strings.TrimSpace(in.Remarks),
		Version:         1,
		StatusUpdatedAt: now,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return newDTO(l, lt, decimal.Zero), nil
}

func (u *Usecase) Approve(ctx context.Context, in DecisionInput) (*LoanDTO, error) {
	if in.Decider.Role != identity.RoleLoanOfficer {
		return nil, fmt.Errorf("%w: only loan officers may approve", identity.ErrForbidden)
	}
	var out *loan.Loan
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		// Single-shot transition: approving an already-approved loan fails.
		if l.Status != loan.StatusPending {
			return fmt.Errorf("%w: cannot approve a %s loan", loan.ErrInvalidTransition, l.Status)
		}
		now := time.Now().UTC()
		l.Status = loan.StatusApproved
		l.ApprovedDate = &now
		l.DeciderID = in.Decider.UserID
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.dto(ctx, out)
}

func (u *Usecase) Reject(ctx context.Context, in DecisionInput) (*LoanDTO, error) {
	if in.Decider.Role != identity.RoleLoanOfficer {
		return nil, fmt.Errorf("%w: only loan officers may reject", identity.ErrForbidden)
	}
	var out *loan.Loan
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != loan.StatusPending {
			return fmt.Errorf("%w: cannot reject a %s loan", loan.ErrInvalidTransition, l.Status)
		}
		reason := strings.TrimSpace(in.Reason)
		if reason == "" {
			reason = loan.DefaultRejectionReason
		}
		now := time.Now().UTC()
		l.Status = loan.StatusRejected
		l.DeciderID = in.Decider.UserID
		l.RejectionReason = reason
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.dto(ctx, out)
}

// MarkCompleted closes an approved loan whose balance already reached zero.
// The repayment processor drives this automatically; accountants and loan
// officers may also call it directly.
func (u *Usecase) MarkCompleted(ctx context.Context, loanID string, actor identity.Actor) (*LoanDTO, error) {
	if actor.Role != identity.RoleAccountant && actor.Role != identity.RoleLoanOfficer {
		return nil, fmt.Errorf("%w: only accountants or loan officers may complete", identity.ErrForbidden)
	}
	var out *loan.Loan
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != loan.StatusApproved {
			return fmt.Errorf("%w: cannot complete a %s loan", loan.ErrInvalidTransition, l.Status)
		}
		paid, err := r.Repayments.TotalPaidByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		// Exact zero, not ≤: a single cent outstanding blocks completion.
		if !l.OutstandingBalance(paid).IsZero() {
			return fmt.Errorf("%w: %s remaining", loan.ErrOutstandingBalance, l.OutstandingBalance(paid))
		}
		l.Status = loan.StatusCompleted
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.dto(ctx, out)
}

// Delete removes a loan together with its repayment history. An approved loan
// still has money in motion and cannot be deleted.
func (u *Usecase) Delete(ctx context.Context, loanID string, actor identity.Actor) error {
	if actor.Role != identity.RoleAdmin {
		return fmt.Errorf("%w: only admins may delete loans", identity.ErrForbidden)
	}
	return u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status == loan.StatusApproved {
			return fmt.Errorf("%w: cannot delete an approved loan", loan.ErrInvalidTransition)
		}
		if err := r.Repayments.DeleteByLoanID(ctx, l.ID); err != nil {
			return err
		}
		return r.Loans.Delete(ctx, l.ID)
	})
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return u.dto(ctx, l)
}

func (u *Usecase) ListByStatus(ctx context.Context, status loan.Status) ([]LoanDTO, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", loan.ErrValidation, status)
	}
	ls, err := u.loans.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return u.dtos(ctx, ls)
}

func (u *Usecase) ListByRequester(ctx context.Context, requesterID string) ([]LoanDTO, error) {
	ls, err := u.loans.ListByRequesterID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return u.dtos(ctx, ls)
}

func (u *Usecase) ListAll(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.dtos(ctx, ls)
}

// ----- DTO assembly -----

func (u *Usecase) dto(ctx context.Context, l *loan.Loan) (*LoanDTO, error) {
	lt, err := u.loanTypes.GetByID(ctx, l.LoanTypeID)
	if err != nil {
		return nil, err
	}
	paid, err := u.repayments.TotalPaidByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return newDTO(l, lt, paid), nil
}

func (u *Usecase) dtos(ctx context.Context, ls []loan.Loan) ([]LoanDTO, error) {
	ids := make([]uint64, 0, len(ls))
	for i := range ls {
		ids = append(ids, ls[i].ID)
	}
	paidByLoan := map[uint64]decimal.Decimal{}
	if len(ids) > 0 {
		var err error
		paidByLoan, err = u.repayments.TotalPaidByLoanIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}
	types, err := u.loanTypes.List(ctx)
	if err != nil {
		return nil, err
	}
	typeByID := make(map[uint64]*loantype.LoanType, len(types))
	for i := range types {
		typeByID[types[i].ID] = &types[i]
	}

	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		l := &ls[i]
		paid, ok := paidByLoan[l.ID]
		if !ok {
			paid = decimal.Zero
		}
		lt := typeByID[l.LoanTypeID]
		if lt == nil {
			lt = &loantype.LoanType{} // type soft-deleted after the loan was written
		}
		out = append(out, *newDTO(l, lt, paid))
	}
	return out, nil
}

func newDTO(l *loan.Loan, lt *loantype.LoanType, paid decimal.Decimal) *LoanDTO {
	return &LoanDTO{
		LoanID:             l.LoanID,
		RequesterID:        l.RequesterID,
		LoanTypeID:         lt.TypeID,
		LoanTypeName:       lt.Name,
		Principal:          l.Principal,
		Status:             string(l.Status),
		ApplicationDate:    l.ApplicationDate,
		ApprovedDate:       l.ApprovedDate,
		DeciderID:          l.DeciderID,
		Remarks:            l.Remarks,
		RejectionReason:    l.RejectionReason,
		TotalPaid:          paid,
		OutstandingBalance: l.OutstandingBalance(paid),
		CreatedAt:          l.CreatedAt,
	}
}
