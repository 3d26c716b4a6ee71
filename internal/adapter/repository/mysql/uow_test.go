package mysql

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"employee-loan-service/internal/domain/identity"
	loanDomain "employee-loan-service/internal/domain/loan"
	repaymentDomain "employee-loan-service/internal/domain/repayment"
	"employee-loan-service/internal/domain/uow"
	repaymentuc "employee-loan-service/internal/usecase/repayment"

	"github.com/shopspring/decimal"
)

func makeUowRepayment(repaymentID string, loanNumericID uint64, amount int64) *repaymentDomain.Repayment {
	return &repaymentDomain.Repayment{
		RepaymentID: repaymentID,
		LoanID:      loanNumericID,
		ProcessorID: "ffffffffffffffffffffffffffffffff",
		AmountPaid:  decimal.NewFromInt(amount),
		Balance:     decimal.Zero,
		PaymentDate: time.Now().UTC(),
	}
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	repayRepo := NewRepaymentRepository(db)

	loanID := newHexID()
	repaymentID := newHexID()

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(loanID, "11111111111111111111111111111111")
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if l.ID == 0 {
			t.Fatalf("loan auto ID not set")
		}
		return r.Repayments.Create(ctx, makeUowRepayment(repaymentID, l.ID, 100))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := loanRepo.GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	if _, err := repayRepo.GetByRepaymentID(ctx, repaymentID); err != nil {
		t.Fatalf("repayment not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	repayRepo := NewRepaymentRepository(db)

	loanID := newHexID()
	repaymentID := newHexID()
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(loanID, "22222222222222222222222222222222")
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if err := r.Repayments.Create(ctx, makeUowRepayment(repaymentID, l.ID, 100)); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := loanRepo.GetByLoanID(ctx, loanID); !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("expected loan absent after rollback, got %v", err)
	}
	if _, err := repayRepo.GetByRepaymentID(ctx, repaymentID); !errors.Is(err, repaymentDomain.ErrNotFound) {
		t.Fatalf("expected repayment absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinLoanTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	repayRepo := NewRepaymentRepository(db)

	loanID := newHexID()
	seed := makeLoan(loanID, "33333333333333333333333333333333")
	seed.Status = loanDomain.StatusApproved
	if err := loanRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	repaymentID := newHexID()
	if err := guow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l == nil || l.LoanID != loanID || l.Status != loanDomain.StatusApproved {
			t.Fatalf("unexpected loan passed to fn: %+v", l)
		}
		if err := r.Repayments.Create(ctx, makeUowRepayment(repaymentID, l.ID, 400_000)); err != nil {
			return err
		}
		l.Status = loanDomain.StatusCompleted
		l.StatusUpdatedAt = time.Now().UTC()
		return r.Loans.Save(ctx, l)
	}); err != nil {
		t.Fatalf("WithinLoanTx commit err: %v", err)
	}

	got, err := loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID post-commit: %v", err)
	}
	if got.Status != loanDomain.StatusCompleted {
		t.Fatalf("loan status not updated, got=%s", got.Status)
	}
	if _, err := repayRepo.GetByRepaymentID(ctx, repaymentID); err != nil {
		t.Fatalf("repayment not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinLoanTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	repayRepo := NewRepaymentRepository(db)

	loanID := newHexID()
	seed := makeLoan(loanID, "44444444444444444444444444444444")
	seed.Status = loanDomain.StatusApproved
	if err := loanRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	repaymentID := newHexID()
	sentinel := errors.New("stop")

	_ = guow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if err := r.Repayments.Create(ctx, makeUowRepayment(repaymentID, l.ID, 400_000)); err != nil {
			return err
		}
		l.Status = loanDomain.StatusCompleted
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	got, err := loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("post-rollback GetByLoanID: %v", err)
	}
	if got.Status != loanDomain.StatusApproved {
		t.Fatalf("expected approved after rollback, got %s", got.Status)
	}
	if got.Version != 1 {
		t.Fatalf("version must revert with the rollback, got %d", got.Version)
	}
	if _, err := repayRepo.GetByRepaymentID(ctx, repaymentID); !errors.Is(err, repaymentDomain.ErrNotFound) {
		t.Fatalf("expected repayment absent after rollback, got %v", err)
	}
}

// Two simultaneous payments against the same loan: exactly one may land, and
// the balance never goes negative.
func TestGormUoW_ConcurrentPays_ExactlyOneWins(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	loanRepo := NewLoanRepository(db)
	repayRepo := NewRepaymentRepository(db)

	loanID := newHexID()
	seed := makeLoan(loanID, "55555555555555555555555555555555")
	seed.Status = loanDomain.StatusApproved
	if err := loanRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	uc := repaymentuc.NewUsecase(loanRepo, repayRepo, NewGormUoW(db))
	accountant := identity.Actor{UserID: "ffffffffffffffffffffffffffffffff", Role: identity.RoleAccountant}

	// 300000 each against a 400000 principal: either payment fits on its own,
	// both together overdraw the loan.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Pay(ctx, repaymentuc.PayInput{
				LoanID:    loanID,
				Processor: accountant,
				Amount:    decimal.NewFromInt(300_000),
			})
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		if !errors.Is(err, loanDomain.ErrValidation) && !errors.Is(err, loanDomain.ErrConflict) {
			t.Fatalf("losing pay failed with %v, want overpayment or conflict", err)
		}
	}
	if wins != 1 {
		t.Fatalf("successful pays = %d, want exactly 1 (errs=%v)", wins, errs)
	}

	total, err := repayRepo.TotalPaidByLoanID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("TotalPaidByLoanID: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(300_000)) {
		t.Fatalf("total paid = %s, want 300000", total)
	}

	fresh, err := loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if fresh.Status != loanDomain.StatusApproved {
		t.Fatalf("status = %s, want approved", fresh.Status)
	}
	if fresh.OutstandingBalance(total).Sign() < 0 {
		t.Fatal("balance went negative")
	}
}

func TestGormUoW_WithinLoanTx_LoanNotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinLoanTx(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatalf("callback should not be called when loan missing")
		return nil
	})
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
