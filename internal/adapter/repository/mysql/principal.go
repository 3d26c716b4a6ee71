package mysql

import (
	"context"

	identityDomain "employee-loan-service/internal/domain/identity"

	"gorm.io/gorm"
)

type PrincipalRepository struct{ db *gorm.DB }

func NewPrincipalRepository(db *gorm.DB) *PrincipalRepository { return &PrincipalRepository{db: db} }

func (r *PrincipalRepository) Create(ctx context.Context, p *identityDomain.Principal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PrincipalRepository) GetByUserID(ctx context.Context, userID string) (*identityDomain.Principal, error) {
	var out identityDomain.Principal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out).Error; err != nil {
		return nil, translateNotFound(err, identityDomain.ErrNotFound)
	}
	return &out, nil
}

// GetByEmail is the single identity lookup: one table, one query, role
// included — no per-role fan-out.
func (r *PrincipalRepository) GetByEmail(ctx context.Context, email string) (*identityDomain.Principal, error) {
	var out identityDomain.Principal
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&out).Error; err != nil {
		return nil, translateNotFound(err, identityDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *PrincipalRepository) List(ctx context.Context) ([]identityDomain.Principal, error) {
	var out []identityDomain.Principal
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *PrincipalRepository) Delete(ctx context.Context, p *identityDomain.Principal) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

func (r *PrincipalRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&identityDomain.Principal{}).Count(&n).Error
	return n, err
}
