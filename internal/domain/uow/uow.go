package uow

import (
	"context"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/domain/loan"
	"employee-loan-service/internal/domain/loantype"
	"employee-loan-service/internal/domain/repayment"
)

type Repos struct {
	Loans      loan.Repository
	Repayments repayment.Repository
	LoanTypes  loantype.Repository
	Principals identity.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// per-loan serialization: locks the loan row first, then passes it in.
	// Operations against different loans never block each other.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
