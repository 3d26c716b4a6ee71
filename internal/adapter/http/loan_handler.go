package http

import (
	"net/http"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/domain/loan"
	"employee-loan-service/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct{ uc *ledger.Usecase }

func NewLoanHandler(uc *ledger.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type submitLoanReq struct {
	LoanTypeID string          `json:"loan_type_id" validate:"required,hex32"`
	Amount     decimal.Decimal `json:"amount"       validate:"required,gt=0,dec2"`
	Remarks    string          `json:"remarks"      validate:"omitempty,max=500"`
}

type rejectLoanReq struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

func (h *LoanHandler) SubmitLoan(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	var req submitLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), ledger.SubmitInput{
		Requester:  a,
		LoanTypeID: req.LoanTypeID,
		Amount:     req.Amount,
		Remarks:    req.Remarks,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListLoans serves the back-office view; employees only see their own loans
// via MyLoans.
func (h *LoanHandler) ListLoans(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	if a.Role == identity.RoleEmployee {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "employees may only list their own loans"})
	}
	ctx := c.Request().Context()
	if status := c.QueryParam("status"); status != "" {
		dtos, err := h.uc.ListByStatus(ctx, loan.Status(status))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, dtos)
	}
	dtos, err := h.uc.ListAll(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) MyLoans(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	dtos, err := h.uc.ListByRequester(c.Request().Context(), a.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.Approve(c.Request().Context(), ledger.DecisionInput{
		LoanID:  c.Param("loan_id"),
		Decider: a,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	var req rejectLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), ledger.DecisionInput{
		LoanID:  c.Param("loan_id"),
		Decider: a,
		Reason:  req.Reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_id"), a); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) CompleteLoan(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.MarkCompleted(c.Request().Context(), c.Param("loan_id"), a)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
