package entity

import "time"

type PaymentRecord struct {
	ID            string    `json:"id" firestore:"id"`
	TxRef         string    `json:"tx_ref" firestore:"txRef"`
	UserID        string    `json:"user_id" firestore:"userId"`
	ProductID     string    `json:"product_id,omitempty" firestore:"productId,omitempty"`
	Plan          string    `json:"plan" firestore:"plan"`
	Amount        float64   `json:"amount" firestore:"amount"`
	Currency      string    `json:"currency" firestore:"currency"`
	Status        string    `json:"status" firestore:"status"` // "pending", "successful", "failed"
	TransactionID string    `json:"transaction_id,omitempty" firestore:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}
