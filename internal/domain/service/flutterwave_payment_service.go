package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"unilagyard/pkg/errors"
)

// CustomerDetails identifies the paying user to the checkout widget.
type CustomerDetails struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone_number,omitempty"`
}

// CheckoutConfig is the configuration object handed to the externally
// loaded checkout widget. The widget completes either via an in-page
// callback or a redirect carrying status, transaction_id and tx_ref.
type CheckoutConfig struct {
	PublicKey   string          `json:"public_key"`
	TxRef       string          `json:"tx_ref"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	RedirectURL string          `json:"redirect_url"`
	Customer    CustomerDetails `json:"customer"`
	Title       string          `json:"title,omitempty"`
}

// VerifiedTransaction is the gateway's record of a completed transaction.
type VerifiedTransaction struct {
	TransactionID string
	TxRef         string
	Status        string
	Amount        float64
	Currency      string
}

type PaymentGatewayService interface {
	BuildCheckoutConfig(txRef string, amount float64, currency string, customer CustomerDetails, redirectURL string) CheckoutConfig
	VerifyTransaction(ctx context.Context, transactionID string) (*VerifiedTransaction, error)
}

// FlutterwavePaymentService talks to the Flutterwave HTTP API.
type FlutterwavePaymentService struct {
	publicKey  string
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewFlutterwavePaymentService(publicKey, secretKey string) *FlutterwavePaymentService {
	return &FlutterwavePaymentService{
		publicKey: publicKey,
		secretKey: secretKey,
		baseURL:   "https://api.flutterwave.com/v3",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewFlutterwavePaymentServiceWithURL is used by tests to point the service
// at a stub server.
func NewFlutterwavePaymentServiceWithURL(publicKey, secretKey, baseURL string) *FlutterwavePaymentService {
	svc := NewFlutterwavePaymentService(publicKey, secretKey)
	svc.baseURL = baseURL
	return svc
}

func (s *FlutterwavePaymentService) BuildCheckoutConfig(txRef string, amount float64, currency string, customer CustomerDetails, redirectURL string) CheckoutConfig {
	return CheckoutConfig{
		PublicKey:   s.publicKey,
		TxRef:       txRef,
		Amount:      amount,
		Currency:    currency,
		RedirectURL: redirectURL,
		Customer:    customer,
		Title:       "UNILAG Yard listing plan",
	}
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID       int64   `json:"id"`
		TxRef    string  `json:"tx_ref"`
		Status   string  `json:"status"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"data"`
}

func (s *FlutterwavePaymentService) VerifyTransaction(ctx context.Context, transactionID string) (*VerifiedTransaction, error) {
	url := fmt.Sprintf("%s/transactions/%s/verify", s.baseURL, transactionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Internal("Failed to create verification request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Internal("Failed to reach payment gateway", err)
	}
	defer resp.Body.Close()

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Internal("Failed to parse gateway response", err)
	}

	if result.Status != "success" {
		return nil, errors.BadRequest(fmt.Sprintf("Transaction verification failed: %s", result.Message), nil)
	}

	return &VerifiedTransaction{
		TransactionID: fmt.Sprintf("%d", result.Data.ID),
		TxRef:         result.Data.TxRef,
		Status:        result.Data.Status,
		Amount:        result.Data.Amount,
		Currency:      result.Data.Currency,
	}, nil
}
