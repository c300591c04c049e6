package entity

import (
	"time"
)

type ProductImage struct {
	ID           string `json:"id" firestore:"id"`
	URL          string `json:"url" firestore:"url"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`
}

type Product struct {
	ID          string         `json:"id" firestore:"id"`
	SellerID    string         `json:"seller_id" firestore:"sellerId"`
	Title       string         `json:"title" firestore:"title"`
	Description string         `json:"description" firestore:"description"`
	Price       float64        `json:"price" firestore:"price"`
	Category    string         `json:"category" firestore:"category"`
	Subcategory string         `json:"subcategory,omitempty" firestore:"subcategory,omitempty"`
	Images      []ProductImage `json:"images" firestore:"images"`
	Status      string         `json:"status" firestore:"status"` // "active", "inactive", "sold"

	// Listing visibility tiers, set when the seller's plan payment completes.
	Featured bool `json:"featured" firestore:"featured"`
	Premium  bool `json:"premium" firestore:"premium"`

	Views     int       `json:"views" firestore:"views"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// Stored as an explicit null while the listing is live; the list queries
	// filter on deletedAt == nil, which never matches a missing field.
	DeletedAt *time.Time `json:"deleted_at,omitempty" firestore:"deletedAt"`
}
