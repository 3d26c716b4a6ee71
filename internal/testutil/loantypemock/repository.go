package loantypemock

import (
	"context"
	"errors"

	domain "employee-loan-service/internal/domain/loantype"
)

// Repo is a function-backed mock that satisfies loantype.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, t *domain.LoanType) error
	GetByTypeIDFn func(ctx context.Context, typeID string) (*domain.LoanType, error)
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.LoanType, error)
	ListFn        func(ctx context.Context) ([]domain.LoanType, error)
	SaveFn        func(ctx context.Context, t *domain.LoanType) error
	DeleteFn      func(ctx context.Context, t *domain.LoanType) error
}

var errNotWired = errors.New("loantypemock: method not wired")

func (m *Repo) Create(ctx context.Context, t *domain.LoanType) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTypeID(ctx context.Context, typeID string) (*domain.LoanType, error) {
	if m.GetByTypeIDFn != nil {
		return m.GetByTypeIDFn(ctx, typeID)
	}
	return nil, errNotWired
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanType, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errNotWired
}

func (m *Repo) List(ctx context.Context) ([]domain.LoanType, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, t *domain.LoanType) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, t *domain.LoanType) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, t)
	}
	return nil
}
