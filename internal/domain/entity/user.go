package entity

import (
	"time"
)

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Bio         string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Role        string `json:"role" firestore:"role"`     // "user", "admin"
	Status      string `json:"status" firestore:"status"` // "active", "banned"
	Plan        string `json:"plan,omitempty" firestore:"plan,omitempty"`

	MatricNumber       string `json:"matric_number,omitempty" firestore:"matricNumber,omitempty"`
	VerificationStatus string `json:"verification_status" firestore:"verificationStatus"` // "unverified", "pending", "verified", "rejected"

	PhotoURL string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	Provider string `json:"provider,omitempty" firestore:"provider,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
