package mysql

import (
	"context"

	repaymentDomain "employee-loan-service/internal/domain/repayment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository { return &RepaymentRepository{db: db} }

func (r *RepaymentRepository) Create(ctx context.Context, rp *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *RepaymentRepository) GetByRepaymentID(ctx context.Context, repaymentID string) (*repaymentDomain.Repayment, error) {
	var out repaymentDomain.Repayment
	if err := r.db.WithContext(ctx).Where("repayment_id = ?", repaymentID).First(&out).Error; err != nil {
		return nil, translateNotFound(err, repaymentDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]repaymentDomain.Repayment, error) {
	var out []repaymentDomain.Repayment
	// Numeric PK order is payment order.
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *RepaymentRepository) ListAll(ctx context.Context) ([]repaymentDomain.Repayment, error) {
	var out []repaymentDomain.Repayment
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *RepaymentRepository) TotalPaidByLoanID(ctx context.Context, loanID uint64) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).Model(&repaymentDomain.Repayment{}).
		Where("loan_id = ?", loanID).
		Select("COALESCE(SUM(amount_paid), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *RepaymentRepository) TotalPaidByLoanIDs(ctx context.Context, loanIDs []uint64) (map[uint64]decimal.Decimal, error) {
	type paidRow struct {
		LoanID uint64          `gorm:"column:loan_id"`
		Total  decimal.Decimal `gorm:"column:total"`
	}
	var rows []paidRow
	err := r.db.WithContext(ctx).Model(&repaymentDomain.Repayment{}).
		Select("loan_id, COALESCE(SUM(amount_paid), 0) AS total").
		Where("loan_id IN ?", loanIDs).
		Group("loan_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.LoanID] = row.Total
	}
	return out, nil
}

func (r *RepaymentRepository) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&repaymentDomain.Repayment{}).Error
}
