package models

import "time"

// EducationModule is a learning unit in the education section.
type EducationModule struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	Level       string    `bson:"level" json:"level"` // "beginner", "intermediate", "advanced"
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	DurationMin int       `bson:"durationMin,omitempty" json:"durationMin,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
