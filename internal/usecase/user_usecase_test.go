package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unilagyard/internal/domain/entity"
	"unilagyard/pkg/errors"
)

func TestIsValidMatricNumber(t *testing.T) {
	valid := []string{"180401001", "000000000", "219876543"}
	for _, s := range valid {
		assert.True(t, isValidMatricNumber(s), s)
	}

	invalid := []string{"", "12345678", "1234567890", "18040100a", "18040 100", "١٢٣٤٥٦٧٨٩"}
	for _, s := range invalid {
		assert.False(t, isValidMatricNumber(s), s)
	}
}

func TestSubmitVerificationRejectsBadMatricBeforeUpload(t *testing.T) {
	user := &entity.User{ID: "user-1", VerificationStatus: "unverified"}
	uploader := &fakeUploader{}
	uc := NewUserUseCase(newFakeUserRepo(user), newFakeVerificationRepo(), uploader, 5*1024*1024)

	_, err := uc.SubmitVerification(context.Background(), "user-1", SubmitVerificationInput{
		MatricNumber: "1234",
		Document:     strings.NewReader("fake image bytes"),
		Filename:     "id-card.jpg",
		ContentType:  "image/jpeg",
		Size:         1024,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	// Validation failed before any network call.
	assert.Zero(t, uploader.calls)
}

func TestSubmitVerificationRejectsUnsupportedDocumentType(t *testing.T) {
	user := &entity.User{ID: "user-1", VerificationStatus: "unverified"}
	uploader := &fakeUploader{}
	uc := NewUserUseCase(newFakeUserRepo(user), newFakeVerificationRepo(), uploader, 5*1024*1024)

	_, err := uc.SubmitVerification(context.Background(), "user-1", SubmitVerificationInput{
		MatricNumber: "180401001",
		Document:     strings.NewReader("not really a video"),
		Filename:     "id.mp4",
		ContentType:  "video/mp4",
		Size:         1024,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Zero(t, uploader.calls)
}

func TestSubmitVerificationRejectsAlreadyVerified(t *testing.T) {
	user := &entity.User{ID: "user-1", VerificationStatus: "verified"}
	uploader := &fakeUploader{}
	uc := NewUserUseCase(newFakeUserRepo(user), newFakeVerificationRepo(), uploader, 5*1024*1024)

	_, err := uc.SubmitVerification(context.Background(), "user-1", SubmitVerificationInput{
		MatricNumber: "180401001",
		Document:     strings.NewReader("fake image bytes"),
		Filename:     "id-card.jpg",
		ContentType:  "image/jpeg",
		Size:         1024,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
	assert.Zero(t, uploader.calls)
}

func TestSubmitVerificationHappyPath(t *testing.T) {
	user := &entity.User{ID: "user-1", VerificationStatus: "unverified"}
	userRepo := newFakeUserRepo(user)
	verificationRepo := newFakeVerificationRepo()
	uploader := &fakeUploader{}
	uc := NewUserUseCase(userRepo, verificationRepo, uploader, 5*1024*1024)

	request, err := uc.SubmitVerification(context.Background(), "user-1", SubmitVerificationInput{
		MatricNumber: "180401001",
		Document:     strings.NewReader("fake image bytes"),
		Filename:     "id-card.jpg",
		ContentType:  "image/jpeg",
		Size:         1024,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, uploader.calls)
	assert.Equal(t, "pending", request.Status)
	assert.Equal(t, "180401001", request.MatricNumber)
	assert.Contains(t, request.DocumentURL, "id-card.jpg")

	updated, err := userRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.VerificationStatus)
	assert.Equal(t, "180401001", updated.MatricNumber)
}

func TestSubmitVerificationResubmitOverwritesPending(t *testing.T) {
	user := &entity.User{ID: "user-1", VerificationStatus: "pending"}
	verificationRepo := newFakeVerificationRepo()
	uploader := &fakeUploader{}
	uc := NewUserUseCase(newFakeUserRepo(user), verificationRepo, uploader, 5*1024*1024)

	_, err := uc.SubmitVerification(context.Background(), "user-1", SubmitVerificationInput{
		MatricNumber: "180401001",
		Document:     strings.NewReader("first"),
		Filename:     "first.jpg",
		ContentType:  "image/jpeg",
		Size:         1024,
	})
	require.NoError(t, err)

	request, err := uc.SubmitVerification(context.Background(), "user-1", SubmitVerificationInput{
		MatricNumber: "180401002",
		Document:     strings.NewReader("second"),
		Filename:     "second.jpg",
		ContentType:  "image/jpeg",
		Size:         1024,
	})
	require.NoError(t, err)

	assert.Len(t, verificationRepo.requests, 1)
	assert.Equal(t, "180401002", request.MatricNumber)
	assert.Contains(t, request.DocumentURL, "second.jpg")
}
