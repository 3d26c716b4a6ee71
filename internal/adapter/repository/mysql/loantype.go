package mysql

import (
	"context"

	loantypeDomain "employee-loan-service/internal/domain/loantype"

	"gorm.io/gorm"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository { return &LoanTypeRepository{db: db} }

func (r *LoanTypeRepository) Create(ctx context.Context, t *loantypeDomain.LoanType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *LoanTypeRepository) GetByTypeID(ctx context.Context, typeID string) (*loantypeDomain.LoanType, error) {
	var out loantypeDomain.LoanType
	if err := r.db.WithContext(ctx).Where("type_id = ?", typeID).First(&out).Error; err != nil {
		return nil, translateNotFound(err, loantypeDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanTypeRepository) GetByID(ctx context.Context, id uint64) (*loantypeDomain.LoanType, error) {
	var out loantypeDomain.LoanType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translateNotFound(err, loantypeDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanTypeRepository) List(ctx context.Context) ([]loantypeDomain.LoanType, error) {
	var out []loantypeDomain.LoanType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *LoanTypeRepository) Save(ctx context.Context, t *loantypeDomain.LoanType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *LoanTypeRepository) Delete(ctx context.Context, t *loantypeDomain.LoanType) error {
	return r.db.WithContext(ctx).Delete(t).Error
}
