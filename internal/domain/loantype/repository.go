package loantype

import "context"

type Repository interface {
	Create(ctx context.Context, t *LoanType) error
	GetByTypeID(ctx context.Context, typeID string) (*LoanType, error)
	// GetByID resolves the numeric FK carried by loans.
	GetByID(ctx context.Context, id uint64) (*LoanType, error)
	List(ctx context.Context) ([]LoanType, error)
	Save(ctx context.Context, t *LoanType) error
	Delete(ctx context.Context, t *LoanType) error
}
