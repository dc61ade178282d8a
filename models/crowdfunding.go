package models

import "time"

// CrowdfundingCampaign is a fundraiser for an accessibility cause.
type CrowdfundingCampaign struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	OrganizerName string    `bson:"organizerName" json:"organizerName"`
	GoalAmount    float64   `bson:"goalAmount" json:"goalAmount"`
	RaisedAmount  float64   `bson:"raisedAmount" json:"raisedAmount"`
	Deadline      time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
