package handler

import (
	"github.com/labstack/echo/v4"

	"unilagyard/internal/usecase"
	"unilagyard/pkg/response"
	"unilagyard/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.adminUseCase.GetDashboardStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := map[string]interface{}{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}
	if verification := c.QueryParam("verification_status"); verification != "" {
		filter["verificationStatus"] = verification
	}

	users, total, err := h.adminUseCase.ListUsers(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := map[string]interface{}{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}
	if category := c.QueryParam("category"); category != "" {
		filter["category"] = category
	}

	products, total, err := h.adminUseCase.ListProducts(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ListReports(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	status := c.QueryParam("status")
	if status == "" {
		status = "pending"
	}

	reports, total, err := h.adminUseCase.ListReports(c.Request().Context(), status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reports, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ListConversations(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	chats, total, err := h.adminUseCase.ListConversations(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, chats, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) BanUser(c echo.Context) error {
	user, err := h.adminUseCase.BanUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) UnbanUser(c echo.Context) error {
	user, err := h.adminUseCase.UnbanUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) DeactivateProduct(c echo.Context) error {
	product, err := h.adminUseCase.DeactivateProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *AdminHandler) ResolveReport(c echo.Context) error {
	report, err := h.adminUseCase.ResolveReport(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}

func (h *AdminHandler) DismissReport(c echo.Context) error {
	report, err := h.adminUseCase.DismissReport(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}

func (h *AdminHandler) ListVerifications(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	status := c.QueryParam("status")
	if status == "" {
		status = "pending"
	}

	requests, total, err := h.adminUseCase.ListVerifications(c.Request().Context(), status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ApproveVerification(c echo.Context) error {
	request, err := h.adminUseCase.ApproveVerification(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *AdminHandler) RejectVerification(c echo.Context) error {
	request, err := h.adminUseCase.RejectVerification(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}
