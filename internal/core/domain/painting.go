package domain

import "time"

// Painting is the core aggregate root of the gallery.
type Painting struct {
	ID            int       `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price,omitempty" bson:"price,omitempty"`
	Year          int       `json:"year,omitempty" bson:"year,omitempty"`
	Medium        string    `json:"medium,omitempty" bson:"medium,omitempty"`
	Dimensions    string    `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	ImageURL      string    `json:"image_url" bson:"image_url"`
	IsFeatured    bool      `json:"is_featured" bson:"is_featured"`
	ArtistID      int       `json:"artist_id" bson:"artist_id"`
	ArtistName    string    `json:"artist_name" bson:"artist_name"`
	CategoryID    int       `json:"category_id" bson:"category_id"`
	CategoryName  string    `json:"category_name" bson:"category_name"`
	AverageRating float64   `json:"average_rating,omitempty" bson:"average_rating,omitempty"`
	RatingCount   int       `json:"rating_count,omitempty" bson:"rating_count,omitempty"`
	CommentCount  int       `json:"comment_count,omitempty" bson:"comment_count,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// Category groups paintings into browsable collections.
type Category struct {
	ID          int       `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
