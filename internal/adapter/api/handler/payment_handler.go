package handler

import (
	"github.com/labstack/echo/v4"

	"unilagyard/internal/usecase"
	"unilagyard/pkg/response"
	"unilagyard/pkg/utils"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type initializePaymentRequest struct {
	Plan      string `json:"plan" validate:"required,oneof=standard featured pro premium"`
	ProductID string `json:"product_id"`
}

type completePaymentRequest struct {
	Status        string `json:"status" validate:"required"`
	TransactionID string `json:"transaction_id"`
	TxRef         string `json:"tx_ref" validate:"required"`
}

func (h *PaymentHandler) ListPlans(c echo.Context) error {
	return response.Success(c, h.paymentUseCase.ListPlans())
}

func (h *PaymentHandler) InitializePayment(c echo.Context) error {
	var req initializePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	config, err := h.paymentUseCase.InitializePlanPayment(c.Request().Context(), uid, usecase.InitializePaymentInput{
		Plan:      req.Plan,
		ProductID: req.ProductID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, config)
}

// CompletePayment is called by the client after the checkout widget finishes,
// either from its in-page callback or from the redirect landing page.
func (h *PaymentHandler) CompletePayment(c echo.Context) error {
	var req completePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	record, err := h.paymentUseCase.CompletePayment(c.Request().Context(), uid, usecase.CompletePaymentInput{
		Status:        req.Status,
		TransactionID: req.TransactionID,
		TxRef:         req.TxRef,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, record)
}

func (h *PaymentHandler) ListMyPayments(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	payments, total, err := h.paymentUseCase.ListPayments(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, payments, total, pagination.Page, pagination.PageSize)
}
