package mysql

import (
	"testing"
	"time"

	loanDomain "employee-loan-service/internal/domain/loan"
	"employee-loan-service/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type loanSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	LoanID          string         `gorm:"size:32;column:loan_id"`
	RequesterID     string         `gorm:"size:32;column:requester_id"`
	LoanTypeID      uint64         `gorm:"column:loan_type_id"`
	Principal       float64        `gorm:"column:principal"`
	Status          string         `gorm:"type:text;column:status"` // ← no enum
	ApplicationDate time.Time      `gorm:"column:application_date"`
	ApprovedDate    *time.Time     `gorm:"column:approved_date"`
	DeciderID       string         `gorm:"size:32;column:decider_id"`
	Remarks         string         `gorm:"column:remarks"`
	RejectionReason string         `gorm:"column:rejection_reason"`
	Version         uint64         `gorm:"column:version;default:1"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type repaymentSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	RepaymentID string    `gorm:"size:32;column:repayment_id"`
	LoanID      uint64    `gorm:"column:loan_id"`
	ProcessorID string    `gorm:"size:32;column:processor_id"`
	AmountPaid  float64   `gorm:"column:amount_paid"`
	Balance     float64   `gorm:"column:balance"`
	PaymentDate time.Time `gorm:"column:payment_date"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (repaymentSQLite) TableName() string { return "repayments" }

type loanTypeSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	TypeID      string         `gorm:"size:32;column:type_id"`
	Name        string         `gorm:"size:100;column:name"`
	Description string         `gorm:"column:description"`
	MaxAmount   float64        `gorm:"column:max_amount"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanTypeSQLite) TableName() string { return "loan_types" }

type principalSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	UserID    string         `gorm:"size:32;column:user_id"`
	Name      string         `gorm:"size:100;column:name"`
	Email     string         `gorm:"size:255;column:email"`
	Role      string         `gorm:"type:text;column:role"` // ← no enum
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (principalSQLite) TableName() string { return "principals" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// sqlite gives every pooled connection its own :memory: database; pin the
	// pool to one so all queries and transactions see the same data.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("DB(): %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&loanSQLite{}, &repaymentSQLite{}, &loanTypeSQLite{}, &principalSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID, requesterID string) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:          loanID,
		RequesterID:     requesterID,
		LoanTypeID:      1,
		Principal:       decimal.NewFromInt(400_000),
		Status:          loanDomain.StatusPending,
		ApplicationDate: time.Now().UTC(),
		Version:         1,
		StatusUpdatedAt: time.Now().UTC(),
	}
}

func newHexID() string { return id.NewID32() }
