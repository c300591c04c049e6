package handler

import (
	"github.com/labstack/echo/v4"

	"unilagyard/internal/usecase"
	"unilagyard/pkg/response"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

type createReportRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Reason    string `json:"reason" validate:"required,oneof=scam prohibited_item misleading harassment other"`
	Details   string `json:"details" validate:"omitempty,max=1000"`
}

func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	report, err := h.reportUseCase.CreateReport(c.Request().Context(), uid, usecase.CreateReportInput{
		ProductID: req.ProductID,
		Reason:    req.Reason,
		Details:   req.Details,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}
