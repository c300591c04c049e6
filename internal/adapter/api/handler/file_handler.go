package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	"unilagyard/internal/domain/service"
	"unilagyard/pkg/errors"
	"unilagyard/pkg/logger"
	"unilagyard/pkg/response"
)

// FileHandler serves listing image uploads. Verification documents go
// through the user verification flow instead, which uploads to the external
// image host.
type FileHandler struct {
	fileService      service.FileUploadService
	fileMetadataRepo repository.FileMetadataRepository
	maxFileSize      int64
}

var fileHandler *FileHandler

func NewFileHandler(fileService service.FileUploadService, fileMetadataRepo repository.FileMetadataRepository, maxFileSize int64) *FileHandler {
	return &FileHandler{
		fileService:      fileService,
		fileMetadataRepo: fileMetadataRepo,
		maxFileSize:      maxFileSize,
	}
}

func SetupFileHandler(fileService service.FileUploadService, fileMetadataRepo repository.FileMetadataRepository, maxFileSize int64) {
	fileHandler = NewFileHandler(fileService, fileMetadataRepo, maxFileSize)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func isAllowedImageType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}

func sanitizeFolderName(folder string) string {
	folder = strings.ToLower(folder)
	var b strings.Builder
	for _, r := range folder {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "uploads"
	}
	return b.String()
}

func (h *FileHandler) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "products"
	} else {
		folder = sanitizeFolderName(folder)
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	result, err := h.fileService.UploadFile(c.Request().Context(), src, fileType, folder, true)
	if err != nil {
		logger.Error("Failed to upload file to storage: %v", err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	uid, _ := c.Get("uid").(string)

	metadata := &entity.FileMetadata{
		ID:         uuid.New().String(),
		URL:        result.URL,
		ObjectName: result.ObjectName,
		EntityType: c.FormValue("entity_type"),
		EntityID:   c.FormValue("entity_id"),
		UploadedBy: uid,
		Filename:   file.Filename,
		FileType:   fileType,
		FileSize:   result.Size,
		IsPublic:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.fileMetadataRepo.Create(c.Request().Context(), metadata); err != nil {
		// The file is already in the bucket; serve it even without metadata.
		logger.Error("Failed to save file metadata: %v", err)
	}

	return response.Created(c, map[string]interface{}{
		"id":       metadata.ID,
		"url":      result.URL,
		"filename": file.Filename,
		"size":     result.Size,
	})
}

func (h *FileHandler) DeleteFile(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	metadata, err := h.fileMetadataRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if metadata.UploadedBy != uid {
		return response.Error(c, errors.Forbidden("You don't have permission to delete this file", nil))
	}

	if err := h.fileService.DeleteFile(c.Request().Context(), metadata.ObjectName); err != nil {
		logger.Error("Failed to delete file from storage: %v", err)
		return response.Error(c, errors.Internal("Failed to delete file", err))
	}

	if err := h.fileMetadataRepo.Delete(c.Request().Context(), metadata.ID); err != nil {
		logger.Error("Failed to delete file metadata: %v", err)
	}

	return response.Success(c, map[string]string{"message": "File deleted"})
}
