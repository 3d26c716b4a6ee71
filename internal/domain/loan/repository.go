package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByID resolves the numeric FK carried by repayments.
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// GetByLoanIDForUpdate takes a row lock; only meaningful inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// Save writes the mutable lifecycle fields with an optimistic version
	// check; returns ErrConflict when the row moved on concurrently.
	Save(ctx context.Context, l *Loan) error
	// Delete soft-deletes one loan row; callers cascade repayments first.
	Delete(ctx context.Context, id uint64) error
	ListByStatus(ctx context.Context, status Status) ([]Loan, error)
	ListByRequesterID(ctx context.Context, requesterID string) ([]Loan, error)
	ListAll(ctx context.Context) ([]Loan, error)
}
