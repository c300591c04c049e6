package handler

import (
	"github.com/labstack/echo/v4"

	"unilagyard/internal/usecase"
	"unilagyard/pkg/errors"
	"unilagyard/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,min=2"`
	Phone       string `json:"phone"`
	Bio         string `json:"bio" validate:"omitempty,max=500"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		Bio:         req.Bio,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// SubmitVerification accepts a multipart form with the matric number and the
// proof document.
func (h *UserHandler) SubmitVerification(c echo.Context) error {
	uid := c.Get("uid").(string)

	matricNumber := c.FormValue("matric_number")

	file, err := c.FormFile("document")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid document", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read document", err))
	}
	defer src.Close()

	request, err := h.userUseCase.SubmitVerification(c.Request().Context(), uid, usecase.SubmitVerificationInput{
		MatricNumber: matricNumber,
		Document:     src,
		Filename:     file.Filename,
		ContentType:  file.Header.Get("Content-Type"),
		Size:         file.Size,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *UserHandler) GetVerification(c echo.Context) error {
	uid := c.Get("uid").(string)

	request, err := h.userUseCase.GetVerification(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}
