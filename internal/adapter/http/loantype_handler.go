package http

import (
	"net/http"

	"employee-loan-service/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanTypeHandler struct{ uc *catalog.Usecase }

func NewLoanTypeHandler(uc *catalog.Usecase) *LoanTypeHandler { return &LoanTypeHandler{uc: uc} }

type loanTypeReq struct {
	Name        string          `json:"name"        validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	MaxAmount   decimal.Decimal `json:"max_amount"  validate:"required,gt=0,dec2"`
}

func (h *LoanTypeHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanTypeHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("type_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanTypeHandler) Create(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	var req loanTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), a, catalog.CreateLoanTypeInput{
		Name:        req.Name,
		Description: req.Description,
		MaxAmount:   req.MaxAmount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanTypeHandler) Update(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	var req loanTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), a, c.Param("type_id"), catalog.UpdateLoanTypeInput{
		Name:        req.Name,
		Description: req.Description,
		MaxAmount:   req.MaxAmount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanTypeHandler) Delete(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Request().Context(), a, c.Param("type_id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
