package mysql

import (
	"context"

	loanDomain "employee-loan-service/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	if err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out).Error; err != nil {
		return nil, translateNotFound(err, loanDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translateNotFound(err, loanDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	q := r.db.WithContext(ctx)
	// SQLite (tests) serializes writers itself and rejects FOR UPDATE syntax.
	if q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanDomain.Loan
	if err := q.Where("loan_id = ?", loanID).First(&out).Error; err != nil {
		return nil, translateNotFound(err, loanDomain.ErrNotFound)
	}
	return &out, nil
}

// Save writes the lifecycle fields guarded by the version column. A row that
// moved on since the read matches nothing and surfaces ErrConflict.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("id = ? AND version = ?", l.ID, l.Version).
		Updates(map[string]any{
			"status":            l.Status,
			"approved_date":     l.ApprovedDate,
			"decider_id":        l.DeciderID,
			"rejection_reason":  l.RejectionReason,
			"status_updated_at": l.StatusUpdatedAt,
			"version":           l.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrConflict
	}
	l.Version++
	return nil
}

func (r *LoanRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&loanDomain.Loan{}, id).Error
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) ListByRequesterID(ctx context.Context, requesterID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}
