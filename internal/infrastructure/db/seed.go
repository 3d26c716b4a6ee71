package db

import (
	"log"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/domain/loantype"
	"employee-loan-service/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed bootstraps the catalog and a principal per role when the tables are
// empty. Idempotent: reruns are no-ops.
func Seed(db *gorm.DB) error {
	if err := seedLoanTypes(db); err != nil {
		return err
	}
	return seedPrincipals(db)
}

func seedLoanTypes(db *gorm.DB) error {
	var n int64
	if err := db.Model(&loantype.LoanType{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	log.Println("seed: initializing loan types")
	types := []loantype.LoanType{
		{TypeID: id.NewID32(), Name: "Salary Advance", Description: "Short-term advance on monthly salary", MaxAmount: decimal.NewFromInt(500_000)},
		{TypeID: id.NewID32(), Name: "Emergency Loan", Description: "For urgent and unexpected expenses", MaxAmount: decimal.NewFromInt(1_000_000)},
		{TypeID: id.NewID32(), Name: "Education Loan", Description: "For educational purposes and professional development", MaxAmount: decimal.NewFromInt(2_000_000)},
		{TypeID: id.NewID32(), Name: "Personal Loan", Description: "General purpose personal loan", MaxAmount: decimal.NewFromInt(1_500_000)},
	}
	return db.Create(&types).Error
}

func seedPrincipals(db *gorm.DB) error {
	var n int64
	if err := db.Model(&identity.Principal{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	log.Println("seed: initializing default principals")
	principals := []identity.Principal{
		{UserID: id.NewID32(), Name: "System Admin", Email: "admin@company.com", Role: identity.RoleAdmin},
		{UserID: id.NewID32(), Name: "John Doe", Email: "employee@company.com", Role: identity.RoleEmployee},
		{UserID: id.NewID32(), Name: "Jane Smith", Email: "jane.smith@company.com", Role: identity.RoleEmployee},
		{UserID: id.NewID32(), Name: "Michael Johnson", Email: "officer@company.com", Role: identity.RoleLoanOfficer},
		{UserID: id.NewID32(), Name: "Sarah Williams", Email: "accountant@company.com", Role: identity.RoleAccountant},
	}
	if err := db.Create(&principals).Error; err != nil {
		return err
	}
	for _, p := range principals {
		log.Printf("seed: %-12s %s (%s)", p.Role, p.Email, p.UserID)
	}
	return nil
}
