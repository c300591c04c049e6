package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unilagyard/internal/domain/entity"
	"unilagyard/pkg/errors"
)

func TestRegisterCreatesProfileAndSession(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUseCase(userRepo, newFakeAuthClient())

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:       "ada@live.unilag.edu.ng",
		Password:    "correct-horse",
		DisplayName: "Ada",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "user", result.User.Role)
	assert.Equal(t, "active", result.User.Status)
	assert.Equal(t, "unverified", result.User.VerificationStatus)
	assert.Equal(t, "password", result.User.Provider)

	stored, err := userRepo.GetByEmail(context.Background(), "ada@live.unilag.edu.ng")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, stored.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	existing := &entity.User{ID: "u1", Email: "ada@live.unilag.edu.ng"}
	uc := NewAuthUseCase(newFakeUserRepo(existing), newFakeAuthClient())

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "ada@live.unilag.edu.ng",
		Password: "correct-horse",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestLoginRejectsBannedAccount(t *testing.T) {
	// The fake auth client verifies "token-<email>" back to the same string,
	// so the profile ID has to match it.
	banned := &entity.User{ID: "token-ada@live.unilag.edu.ng", Email: "ada@live.unilag.edu.ng", Status: "banned"}
	uc := NewAuthUseCase(newFakeUserRepo(banned), newFakeAuthClient())

	_, err := uc.Login(context.Background(), "ada@live.unilag.edu.ng", "correct-horse")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestSyncProfileCreatesDocumentOnFirstContact(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUseCase(userRepo, newFakeAuthClient())

	user, err := uc.SyncProfile(context.Background(), "google-uid", "ada@gmail.com", "Ada", "https://photo.example.com/ada.jpg", "google.com")

	require.NoError(t, err)
	assert.Equal(t, "google-uid", user.ID)
	assert.Equal(t, "google.com", user.Provider)
	assert.Equal(t, "unverified", user.VerificationStatus)

	// Second sync returns the existing profile unchanged.
	again, err := uc.SyncProfile(context.Background(), "google-uid", "ada@gmail.com", "Renamed", "", "google.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.DisplayName)
}
