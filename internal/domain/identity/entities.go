package identity

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("principal not found")
	ErrForbidden = errors.New("principal role not permitted for this operation")
)

type Role string

const (
	RoleEmployee    Role = "EMPLOYEE"
	RoleAdmin       Role = "ADMIN"
	RoleLoanOfficer Role = "LOAN_OFFICER"
	RoleAccountant  Role = "ACCOUNTANT"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleAdmin, RoleLoanOfficer, RoleAccountant:
		return true
	}
	return false
}

// Principal is the single identity record for every kind of user. One table,
// one lookup keyed by email, role as a tag — not one table per role.
type Principal struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	UserID    string         `gorm:"size:32;uniqueIndex:ux_principals_user_id_active" json:"user_id"`
	Name      string         `gorm:"size:100" json:"name"`
	Email     string         `gorm:"size:255;uniqueIndex:ux_principals_email_active" json:"email"`
	Role      Role           `gorm:"type:enum('EMPLOYEE','ADMIN','LOAN_OFFICER','ACCOUNTANT')" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Principal) TableName() string { return "principals" }

// Actor is the caller identity attached to each request. The service trusts
// the resolved identity for attribution; it never authenticates credentials.
type Actor struct {
	UserID string
	Role   Role
}
