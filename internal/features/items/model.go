package items

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item represents a lost or found report posted by a user
type Item struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type          string             `bson:"type" json:"type"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Location      string             `bson:"location" json:"location"`
	Date          string             `bson:"date" json:"date"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Labels        []string           `bson:"labels" json:"labels"`
	ContactNumber string             `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	OwnerID       string             `bson:"ownerId" json:"ownerId"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateItemRequest is the payload for posting a new item
type CreateItemRequest struct {
	Type          string   `json:"type" binding:"required,oneof=lost found"`
	Title         string   `json:"title" binding:"required,min=3"`
	Description   string   `json:"description"`
	Location      string   `json:"location" binding:"required,min=2"`
	Date          string   `json:"date" binding:"required"`
	ImageURL      string   `json:"imageUrl"`
	Labels        []string `json:"labels"`
	ContactNumber string   `json:"contactNumber"`
}

// MatchCandidate pairs an item of the opposite type with its overlap score
type MatchCandidate struct {
	Item  Item `json:"item"`
	Score int  `json:"score"`
}
