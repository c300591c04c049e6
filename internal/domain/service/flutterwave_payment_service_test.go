package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCheckoutConfig(t *testing.T) {
	svc := NewFlutterwavePaymentService("pk-test", "sk-test")

	config := svc.BuildCheckoutConfig("YARD-abc", 1500, "NGN", CustomerDetails{
		Email: "seller@live.unilag.edu.ng",
		Name:  "Ada",
	}, "https://yard.example.com/payment/complete")

	assert.Equal(t, "pk-test", config.PublicKey)
	assert.Equal(t, "YARD-abc", config.TxRef)
	assert.Equal(t, float64(1500), config.Amount)
	assert.Equal(t, "NGN", config.Currency)
	assert.Equal(t, "https://yard.example.com/payment/complete", config.RedirectURL)
	assert.Equal(t, "seller@live.unilag.edu.ng", config.Customer.Email)
}

func TestVerifyTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/812345/verify", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"message": "Transaction fetched successfully",
			"data": {
				"id": 812345,
				"tx_ref": "YARD-abc",
				"status": "successful",
				"amount": 1500,
				"currency": "NGN"
			}
		}`))
	}))
	defer server.Close()

	svc := NewFlutterwavePaymentServiceWithURL("pk-test", "sk-test", server.URL)

	verified, err := svc.VerifyTransaction(context.Background(), "812345")

	require.NoError(t, err)
	assert.Equal(t, "812345", verified.TransactionID)
	assert.Equal(t, "YARD-abc", verified.TxRef)
	assert.Equal(t, "successful", verified.Status)
	assert.Equal(t, float64(1500), verified.Amount)
	assert.Equal(t, "NGN", verified.Currency)
}

func TestVerifyTransactionGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": "error", "message": "No transaction was found for this id"}`))
	}))
	defer server.Close()

	svc := NewFlutterwavePaymentServiceWithURL("pk-test", "sk-test", server.URL)

	_, err := svc.VerifyTransaction(context.Background(), "999999")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "No transaction was found")
}
