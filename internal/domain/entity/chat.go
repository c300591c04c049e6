package entity

import "time"

type Chat struct {
	ID           string         `json:"id" firestore:"id"`
	Participants []string       `json:"participants" firestore:"participants"`
	ProductID    string         `json:"product_id,omitempty" firestore:"productId,omitempty"`
	LastMessage  string         `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastUpdated  time.Time      `json:"last_updated" firestore:"lastUpdated"`
	UnreadCount  map[string]int `json:"unread_count" firestore:"unreadCount"` // userID -> unread messages
	CreatedAt    time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time      `json:"updated_at" firestore:"updatedAt"`
}
