package http

import (
	"net/http"

	"employee-loan-service/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Summary(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.Summary(c.Request().Context(), a)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReportHandler) Outstanding(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.Outstanding(c.Request().Context(), a)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
