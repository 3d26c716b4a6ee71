package uowmock

import (
	"context"

	"employee-loan-service/internal/domain/loan"
	"employee-loan-service/internal/domain/uow"
)

// UoW runs transaction callbacks against the mocks in Repos, without any real
// transaction. WithinLoanTx resolves the loan through Repos.Loans, matching
// the real unit of work's lock-then-call shape.
type UoW struct {
	Repos          uow.Repos
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	l, err := m.Repos.Loans.GetByLoanIDForUpdate(ctx, loanID)
	if err != nil {
		return err
	}
	return fn(m.Repos, l)
}
