package entity

import "time"

type Report struct {
	ID         string     `json:"id" firestore:"id"`
	ReporterID string     `json:"reporter_id" firestore:"reporterId"`
	ProductID  string     `json:"product_id,omitempty" firestore:"productId,omitempty"`
	SellerID   string     `json:"seller_id,omitempty" firestore:"sellerId,omitempty"`
	Reason     string     `json:"reason" firestore:"reason"`
	Details    string     `json:"details,omitempty" firestore:"details,omitempty"`
	Status     string     `json:"status" firestore:"status"` // "pending", "resolved", "dismissed"
	CreatedAt  time.Time  `json:"created_at" firestore:"createdAt"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty" firestore:"resolvedAt,omitempty"`
}
