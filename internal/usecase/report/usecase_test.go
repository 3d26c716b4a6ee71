package report

import (
	"context"
	"errors"
	"testing"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/domain/loan"
	"employee-loan-service/internal/testutil/loanmock"
	"employee-loan-service/internal/testutil/repaymentmock"

	"github.com/shopspring/decimal"
)

var admin = identity.Actor{UserID: "11111111111111111111111111111111", Role: identity.RoleAdmin}

func sampleLoans() []loan.Loan {
	return []loan.Loan{
		{ID: 1, LoanID: "a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1", Status: loan.StatusPending, Principal: decimal.NewFromInt(100_000)},
		{ID: 2, LoanID: "a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2", Status: loan.StatusApproved, Principal: decimal.NewFromInt(400_000), RequesterID: "u1"},
		{ID: 3, LoanID: "a3a3a3a3a3a3a3a3a3a3a3a3a3a3a3a3", Status: loan.StatusApproved, Principal: decimal.NewFromInt(200_000), RequesterID: "u2"},
		{ID: 4, LoanID: "a4a4a4a4a4a4a4a4a4a4a4a4a4a4a4a4", Status: loan.StatusRejected, Principal: decimal.NewFromInt(50_000)},
		{ID: 5, LoanID: "a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5", Status: loan.StatusCompleted, Principal: decimal.NewFromInt(300_000)},
	}
}

func TestSummary(t *testing.T) {
	loans := &loanmock.Repo{
		ListAllFn: func(ctx context.Context) ([]loan.Loan, error) { return sampleLoans(), nil },
	}
	uc := NewUsecase(loans, &repaymentmock.Repo{})

	got, err := uc.Summary(context.Background(), admin)
	if err != nil {
		t.Fatalf("Summary err: %v", err)
	}
	if got.TotalLoans != 5 || got.PendingLoans != 1 || got.ApprovedLoans != 2 ||
		got.RejectedLoans != 1 || got.CompletedLoans != 1 {
		t.Fatalf("counts = %+v", got)
	}
	// approved (400k + 200k) + completed (300k); pending and rejected excluded
	if !got.TotalDisbursed.Equal(decimal.NewFromInt(900_000)) {
		t.Fatalf("disbursed = %s, want 900000", got.TotalDisbursed)
	}
}

func TestSummary_RequiresAdmin(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, &repaymentmock.Repo{})
	for _, role := range []identity.Role{identity.RoleEmployee, identity.RoleLoanOfficer, identity.RoleAccountant} {
		_, err := uc.Summary(context.Background(), identity.Actor{UserID: "u", Role: role})
		if !errors.Is(err, identity.ErrForbidden) {
			t.Fatalf("role %s: err = %v, want ErrForbidden", role, err)
		}
	}
}

func TestOutstanding(t *testing.T) {
	all := sampleLoans()
	loans := &loanmock.Repo{
		ListByStatusFn: func(ctx context.Context, status loan.Status) ([]loan.Loan, error) {
			if status != loan.StatusApproved {
				t.Fatalf("status = %s, want approved", status)
			}
			return []loan.Loan{all[1], all[2]}, nil
		},
	}
	repays := &repaymentmock.Repo{
		TotalPaidByLoanIDsFn: func(ctx context.Context, ids []uint64) (map[uint64]decimal.Decimal, error) {
			// loan 2 half repaid, loan 3 untouched
			return map[uint64]decimal.Decimal{2: decimal.NewFromInt(200_000)}, nil
		},
	}
	uc := NewUsecase(loans, repays)

	got, err := uc.Outstanding(context.Background(), admin)
	if err != nil {
		t.Fatalf("Outstanding err: %v", err)
	}
	if got.TotalOutstandingLoans != 2 {
		t.Fatalf("loans = %d, want 2", got.TotalOutstandingLoans)
	}
	// (400k - 200k) + 200k
	if !got.TotalOutstandingAmount.Equal(decimal.NewFromInt(400_000)) {
		t.Fatalf("amount = %s, want 400000", got.TotalOutstandingAmount)
	}
	if !got.Loans[0].OutstandingBalance.Equal(decimal.NewFromInt(200_000)) {
		t.Fatalf("loan 2 balance = %s", got.Loans[0].OutstandingBalance)
	}
	if !got.Loans[1].TotalPaid.IsZero() {
		t.Fatalf("loan 3 paid = %s, want 0", got.Loans[1].TotalPaid)
	}
}

func TestOutstanding_Empty(t *testing.T) {
	loans := &loanmock.Repo{
		ListByStatusFn: func(ctx context.Context, status loan.Status) ([]loan.Loan, error) {
			return nil, nil
		},
	}
	uc := NewUsecase(loans, &repaymentmock.Repo{})

	got, err := uc.Outstanding(context.Background(), admin)
	if err != nil {
		t.Fatalf("Outstanding err: %v", err)
	}
	if got.TotalOutstandingLoans != 0 || !got.TotalOutstandingAmount.IsZero() || len(got.Loans) != 0 {
		t.Fatalf("got = %+v", got)
	}
}
