package domain

import "time"

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a single score a user gave a painting. At most one rating
// exists per (painting, user) pair; re-submitting replaces the score.
type Rating struct {
	ID         int       `json:"id" bson:"_id,omitempty"`
	PaintingID int       `json:"painting_id" bson:"painting_id"`
	UserID     int       `json:"user_id" bson:"user_id"`
	Score      int       `json:"score" bson:"score"`
	UserName   string    `json:"user_name,omitempty" bson:"user_name,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Comment is a free-text remark attached to a painting.
type Comment struct {
	ID         int       `json:"id" bson:"_id,omitempty"`
	PaintingID int       `json:"painting_id" bson:"painting_id"`
	UserID     int       `json:"user_id" bson:"user_id"`
	Content    string    `json:"content" bson:"content"`
	UserName   string    `json:"user_name" bson:"user_name"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
