package http

import (
	"net/http"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type payReq struct {
	AmountPaid decimal.Decimal `json:"amount_paid" validate:"required,gt=0,dec2"`
}

func (h *RepaymentHandler) Pay(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Pay(c.Request().Context(), repayment.PayInput{
		LoanID:    c.Param("loan_id"),
		Processor: a,
		Amount:    req.AmountPaid,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) ListByLoan(c echo.Context) error {
	dtos, err := h.uc.ListByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *RepaymentHandler) ListAll(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	if a.Role == identity.RoleEmployee {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not allowed"})
	}
	dtos, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
