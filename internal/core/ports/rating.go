package ports

import (
	"context"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

// ListRatingsFilter carries query parameters for listing ratings.
type ListRatingsFilter struct {
	PaintingID int // optional: 0 = no filter
	UserID     int // optional: 0 = no filter
	Page       int
	Limit      int
}

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	// Upsert inserts the rating or replaces the existing score for the same
	// (painting, user) pair. The stored rating is returned either way.
	Upsert(ctx context.Context, r *domain.Rating) (*domain.Rating, error)
	FindByID(ctx context.Context, id int) (*domain.Rating, error)
	List(ctx context.Context, filter ListRatingsFilter) ([]domain.Rating, int64, error)
	Delete(ctx context.Context, id int) error
	// Aggregate returns the average score and rating count for a painting.
	Aggregate(ctx context.Context, paintingID int) (average float64, count int, err error)
}

// RateInput carries a rating submission. UserID and UserName come from the
// session.
type RateInput struct {
	PaintingID int
	Score      int
	UserID     int
	UserName   string
}

// RatingPage is one page of ratings plus pagination metadata.
type RatingPage struct {
	Items []domain.Rating
	Total int64
	Page  int
	Limit int
	Pages int
}

// RatingService defines rating use cases.
type RatingService interface {
	ListRatings(ctx context.Context, filter ListRatingsFilter) (*RatingPage, error)
	// Rate creates or updates the caller's rating for a painting.
	Rate(ctx context.Context, input RateInput) (*domain.Rating, error)
	DeleteRating(ctx context.Context, id, actorID int) error
}
