package models

import "time"

// CommunityPost is a post on the community feed.
type CommunityPost struct {
	ID         string    `bson:"id" json:"id"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	Content    string    `bson:"content" json:"content"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL   string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Likes      int       `bson:"likes" json:"likes"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
