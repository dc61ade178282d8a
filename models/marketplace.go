package models

import "time"

// MarketplaceItem is a creative work listed by a community member.
type MarketplaceItem struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	SellerName  string    `bson:"sellerName" json:"sellerName"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
