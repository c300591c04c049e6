package usecase

import (
	"context"
	"io"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	"unilagyard/internal/domain/service"
	"unilagyard/pkg/errors"
	"unilagyard/pkg/logger"
)

type UserUseCase struct {
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	uploader         service.DocumentUploader
	maxUploadSize    int64
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	verificationRepo repository.VerificationRepository,
	uploader service.DocumentUploader,
	maxUploadSize int64,
) *UserUseCase {
	return &UserUseCase{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		uploader:         uploader,
		maxUploadSize:    maxUploadSize,
	}
}

type UpdateProfileInput struct {
	DisplayName string
	Phone       string
	Bio         string
	PhotoURL    string
}

type SubmitVerificationInput struct {
	MatricNumber string
	Document     io.Reader
	Filename     string
	ContentType  string
	Size         int64
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	user.Phone = input.Phone
	user.Bio = input.Bio
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// isValidMatricNumber reports whether s is exactly nine digits.
func isValidMatricNumber(s string) bool {
	if len(s) != 9 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAllowedDocumentType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "application/pdf":
		return true
	}
	return false
}

// SubmitVerification validates the form, uploads the proof document to the
// external image host, then writes the verification request. Validation and
// the upload both happen before any document write: an upload failure aborts
// the submission, while a write failure after a successful upload leaves an
// orphaned remote file with no cleanup path.
func (uc *UserUseCase) SubmitVerification(ctx context.Context, userID string, input SubmitVerificationInput) (*entity.VerificationRequest, error) {
	if !isValidMatricNumber(input.MatricNumber) {
		return nil, errors.BadRequest("Matric number must be exactly 9 digits", nil)
	}

	if !isAllowedDocumentType(input.ContentType) {
		return nil, errors.BadRequest("Document must be a JPEG, PNG or PDF", nil)
	}

	if input.Size > uc.maxUploadSize {
		return nil, errors.BadRequest("Document exceeds the maximum upload size", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.VerificationStatus == "verified" {
		return nil, errors.Conflict("Account is already verified")
	}

	hosted, err := uc.uploader.Upload(ctx, input.Document, input.Filename, input.ContentType)
	if err != nil {
		return nil, errors.Internal("Failed to upload verification document", err)
	}

	request := &entity.VerificationRequest{
		UserID:       userID,
		MatricNumber: input.MatricNumber,
		DocumentURL:  hosted.URL,
		DeleteURL:    hosted.DeleteURL,
		Status:       "pending",
	}

	if err := uc.verificationRepo.Upsert(ctx, request); err != nil {
		// The uploaded document is now orphaned on the remote host.
		return nil, err
	}

	user.MatricNumber = input.MatricNumber
	user.VerificationStatus = "pending"
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Verification request saved but user %s status update failed: %v", userID, err)
	}

	return request, nil
}

func (uc *UserUseCase) GetVerification(ctx context.Context, userID string) (*entity.VerificationRequest, error) {
	return uc.verificationRepo.GetByUserID(ctx, userID)
}
