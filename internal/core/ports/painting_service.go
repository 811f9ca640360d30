package ports

import (
	"context"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

// CreatePaintingInput carries all data needed to create a new painting.
// ArtistID and ArtistName come from the session, never from the request body.
type CreatePaintingInput struct {
	Title       string
	Description string
	Price       float64
	Year        int
	Medium      string
	Dimensions  string
	ImageURL    string
	IsFeatured  bool
	CategoryID  int
	ArtistID    int
	ArtistName  string
}

// UpdatePaintingInput carries the editable fields of a painting. The acting
// artist must own the painting.
type UpdatePaintingInput struct {
	ID          int
	Title       string
	Description string
	Price       float64
	Year        int
	Medium      string
	Dimensions  string
	ImageURL    string
	IsFeatured  bool
	CategoryID  int
	ActorID     int
}

// PaintingPage is one page of paintings plus pagination metadata.
type PaintingPage struct {
	Items []domain.Painting
	Total int64
	Page  int
	Limit int
	Pages int
}

// PaintingService defines the gallery's painting use cases.
type PaintingService interface {
	ListPaintings(ctx context.Context, filter ListPaintingsFilter) (*PaintingPage, error)
	GetPainting(ctx context.Context, id int) (*domain.Painting, error)
	CreatePainting(ctx context.Context, input CreatePaintingInput) (*domain.Painting, error)
	UpdatePainting(ctx context.Context, input UpdatePaintingInput) (*domain.Painting, error)
	DeletePainting(ctx context.Context, id, actorID int) error
	// MyPaintings lists the paintings owned by one artist.
	MyPaintings(ctx context.Context, artistID, page, limit int) (*PaintingPage, error)
	// FeaturedPaintings returns up to limit featured paintings, cache-first.
	FeaturedPaintings(ctx context.Context, limit int) ([]domain.Painting, error)
}
