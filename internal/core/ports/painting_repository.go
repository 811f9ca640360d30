package ports

import (
	"context"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

// ListPaintingsFilter carries all query parameters for listing paintings.
type ListPaintingsFilter struct {
	CategoryID int    // optional: 0 = no filter
	ArtistID   int    // optional: 0 = no filter
	Search     string // optional: partial match on title or description
	Featured   bool   // optional: only featured paintings
	Page       int    // 1-based
	Limit      int    // max rows per page (capped at 100 by service)
}

// PaintingRepository defines persistence operations for paintings.
type PaintingRepository interface {
	Insert(ctx context.Context, p *domain.Painting) (*domain.Painting, error)
	FindByID(ctx context.Context, id int) (*domain.Painting, error)
	// List returns a page of paintings matching filter and the total count.
	List(ctx context.Context, filter ListPaintingsFilter) ([]domain.Painting, int64, error)
	Update(ctx context.Context, p *domain.Painting) error
	Delete(ctx context.Context, id int) error
	// UpdateRatingStats stores the denormalised aggregate rating on the painting.
	UpdateRatingStats(ctx context.Context, id int, average float64, count int) error
	// UpdateCommentCount stores the denormalised comment count on the painting.
	UpdateCommentCount(ctx context.Context, id int, count int) error
}
