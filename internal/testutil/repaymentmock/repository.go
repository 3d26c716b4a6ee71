package repaymentmock

import (
	"context"
	"errors"

	domain "employee-loan-service/internal/domain/repayment"

	"github.com/shopspring/decimal"
)

// Repo is a function-backed mock that satisfies repayment.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, r *domain.Repayment) error
	GetByRepaymentIDFn   func(ctx context.Context, repaymentID string) (*domain.Repayment, error)
	ListByLoanIDFn       func(ctx context.Context, loanID uint64) ([]domain.Repayment, error)
	ListAllFn            func(ctx context.Context) ([]domain.Repayment, error)
	TotalPaidByLoanIDFn  func(ctx context.Context, loanID uint64) (decimal.Decimal, error)
	TotalPaidByLoanIDsFn func(ctx context.Context, loanIDs []uint64) (map[uint64]decimal.Decimal, error)
	DeleteByLoanIDFn     func(ctx context.Context, loanID uint64) error
}

var errNotWired = errors.New("repaymentmock: method not wired")

func (m *Repo) Create(ctx context.Context, r *domain.Repayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRepaymentID(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
	if m.GetByRepaymentIDFn != nil {
		return m.GetByRepaymentIDFn(ctx, repaymentID)
	}
	return nil, errNotWired
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Repayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, errNotWired
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Repayment, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errNotWired
}

func (m *Repo) TotalPaidByLoanID(ctx context.Context, loanID uint64) (decimal.Decimal, error) {
	if m.TotalPaidByLoanIDFn != nil {
		return m.TotalPaidByLoanIDFn(ctx, loanID)
	}
	return decimal.Zero, nil
}

func (m *Repo) TotalPaidByLoanIDs(ctx context.Context, loanIDs []uint64) (map[uint64]decimal.Decimal, error) {
	if m.TotalPaidByLoanIDsFn != nil {
		return m.TotalPaidByLoanIDsFn(ctx, loanIDs)
	}
	return map[uint64]decimal.Decimal{}, nil
}

func (m *Repo) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}
