package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"

	"unilagyard/pkg/errors"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) DisableUser(ctx context.Context, uid string) error {
	params := (&auth.UserToUpdate{}).Disabled(true)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges credentials for an ID token via the
// identity-toolkit REST API. The admin SDK cannot sign users in directly.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", "", err
	}

	url := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", identityToolkitURL, f.apiKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", "", errors.Internal("Failed to reach authentication provider", err)
	}
	defer resp.Body.Close()

	var result signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", errors.Internal("Failed to parse authentication response", err)
	}

	if result.Error != nil {
		return "", "", mapAuthError(result.Error.Message)
	}

	return result.IDToken, result.RefreshToken, nil
}

// mapAuthError translates identity-toolkit error codes into user-facing
// messages; anything unrecognised falls back to a generic message.
func mapAuthError(code string) error {
	switch code {
	case "EMAIL_EXISTS":
		return errors.Conflict("An account with this email already exists")
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return errors.Unauthorized("Invalid email or password", nil)
	case "USER_DISABLED":
		return errors.Forbidden("This account has been disabled", nil)
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return errors.New("TOO_MANY_ATTEMPTS", "Too many attempts, try again later", http.StatusTooManyRequests, nil)
	default:
		return errors.Unauthorized("Sign-in failed", fmt.Errorf("auth provider error: %s", code))
	}
}
