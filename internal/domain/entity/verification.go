package entity

import "time"

// VerificationRequest is keyed by the submitting user's ID: resubmitting
// overwrites any previous pending or rejected request.
type VerificationRequest struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"user_id" firestore:"userId"`
	MatricNumber string    `json:"matric_number" firestore:"matricNumber"`
	DocumentURL  string    `json:"document_url" firestore:"documentUrl"`
	DeleteURL    string    `json:"delete_url,omitempty" firestore:"deleteUrl,omitempty"`
	Status       string    `json:"status" firestore:"status"` // "pending", "approved", "rejected"
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}
