package identitymock

import (
	"context"
	"errors"

	domain "employee-loan-service/internal/domain/identity"
)

// Repo is a function-backed mock that satisfies identity.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, p *domain.Principal) error
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.Principal, error)
	GetByEmailFn  func(ctx context.Context, email string) (*domain.Principal, error)
	ListFn        func(ctx context.Context) ([]domain.Principal, error)
	DeleteFn      func(ctx context.Context, p *domain.Principal) error
	CountFn       func(ctx context.Context) (int64, error)
}

var errNotWired = errors.New("identitymock: method not wired")

func (m *Repo) Create(ctx context.Context, p *domain.Principal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Principal, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errNotWired
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errNotWired
}

func (m *Repo) List(ctx context.Context) ([]domain.Principal, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, p *domain.Principal) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, p)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
