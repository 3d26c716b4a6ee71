package identity

import "context"

type Repository interface {
	Create(ctx context.Context, p *Principal) error
	GetByUserID(ctx context.Context, userID string) (*Principal, error)
	GetByEmail(ctx context.Context, email string) (*Principal, error)
	List(ctx context.Context) ([]Principal, error)
	Delete(ctx context.Context, p *Principal) error
	Count(ctx context.Context) (int64, error)
}
