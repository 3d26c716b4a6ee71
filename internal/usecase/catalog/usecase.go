// Package catalog manages the loan type catalog. Reads are open; writes are
// admin-only.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/domain/loantype"
	"employee-loan-service/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct{ types loantype.Repository }

func NewUsecase(types loantype.Repository) *Usecase { return &Usecase{types: types} }

func (u *Usecase) Create(ctx context.Context, actor identity.Actor, in CreateLoanTypeInput) (*LoanTypeDTO, error) {
	if actor.Role != identity.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may manage loan types", identity.ErrForbidden)
	}
	if err := validate(in.Name, in.MaxAmount); err != nil {
		return nil, err
	}
	t := &loantype.LoanType{
		TypeID:      id.NewID32(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		MaxAmount:   in.MaxAmount,
	}
	if err := u.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return newDTO(t), nil
}

func (u *Usecase) Update(ctx context.Context, actor identity.Actor, typeID string, in UpdateLoanTypeInput) (*LoanTypeDTO, error) {
	if actor.Role != identity.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may manage loan types", identity.ErrForbidden)
	}
	if err := validate(in.Name, in.MaxAmount); err != nil {
		return nil, err
	}
	t, err := u.types.GetByTypeID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	t.Name = strings.TrimSpace(in.Name)
	t.Description = strings.TrimSpace(in.Description)
	t.MaxAmount = in.MaxAmount
	if err := u.types.Save(ctx, t); err != nil {
		return nil, err
	}
	return newDTO(t), nil
}

func (u *Usecase) Delete(ctx context.Context, actor identity.Actor, typeID string) error {
	if actor.Role != identity.RoleAdmin {
		return fmt.Errorf("%w: only admins may manage loan types", identity.ErrForbidden)
	}
	t, err := u.types.GetByTypeID(ctx, typeID)
	if err != nil {
		return err
	}
	return u.types.Delete(ctx, t)
}

func (u *Usecase) Get(ctx context.Context, typeID string) (*LoanTypeDTO, error) {
	t, err := u.types.GetByTypeID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	return newDTO(t), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanTypeDTO, error) {
	ts, err := u.types.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanTypeDTO, 0, len(ts))
	for i := range ts {
		out = append(out, *newDTO(&ts[i]))
	}
	return out, nil
}

func validate(name string, maxAmount decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", loantype.ErrValidation)
	}
	if maxAmount.Sign() <= 0 {
		return fmt.Errorf("%w: max amount must be positive", loantype.ErrValidation)
	}
	return nil
}

func newDTO(t *loantype.LoanType) *LoanTypeDTO {
	return &LoanTypeDTO{
		TypeID:      t.TypeID,
		Name:        t.Name,
		Description: t.Description,
		MaxAmount:   t.MaxAmount,
	}
}
