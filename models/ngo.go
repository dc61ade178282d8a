package models

import "time"

// NGO is an organization listed in the NGO directory.
type NGO struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Focus       string    `bson:"focus,omitempty" json:"focus,omitempty"` // e.g. "mobility", "vision"
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	Contact     string    `bson:"contact,omitempty" json:"contact,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
