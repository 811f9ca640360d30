package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// FeaturedCache abstracts the featured-paintings cache (Redis). Cache
// failures are never fatal; the service falls back to the repository.
type FeaturedCache interface {
	GetFeatured(ctx context.Context, limit int) ([]domain.Painting, error)
	SetFeatured(ctx context.Context, limit int, paintings []domain.Painting) error
	InvalidateFeatured(ctx context.Context) error
}

type paintingService struct {
	repo  ports.PaintingRepository
	cats  ports.CategoryRepository
	cache FeaturedCache
	log   zerolog.Logger
}

// NewPaintingService returns a PaintingService implementation. cache may be
// nil, in which case featured lookups always hit the repository.
func NewPaintingService(repo ports.PaintingRepository, cats ports.CategoryRepository, cache FeaturedCache, log zerolog.Logger) ports.PaintingService {
	return &paintingService{repo: repo, cats: cats, cache: cache, log: log}
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func pageCount(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func (s *paintingService) ListPaintings(ctx context.Context, filter ports.ListPaintingsFilter) (*ports.PaintingPage, error) {
	filter.Page, filter.Limit = clampPage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list paintings: %w", err)
	}

	return &ports.PaintingPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
		Pages: pageCount(total, filter.Limit),
	}, nil
}

func (s *paintingService) GetPainting(ctx context.Context, id int) (*domain.Painting, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *paintingService) CreatePainting(ctx context.Context, input ports.CreatePaintingInput) (*domain.Painting, error) {
	cat, err := s.cats.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("create painting: %w", err)
	}

	now := time.Now().UTC()
	painting := &domain.Painting{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Year:         input.Year,
		Medium:       input.Medium,
		Dimensions:   input.Dimensions,
		ImageURL:     input.ImageURL,
		IsFeatured:   input.IsFeatured,
		ArtistID:     input.ArtistID,
		ArtistName:   input.ArtistName,
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, painting)
	if err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("failed to create painting")
		return nil, err
	}

	s.invalidateFeatured(ctx)
	s.log.Info().Int("id", created.ID).Int("artist_id", created.ArtistID).Str("title", created.Title).Msg("painting created")
	return created, nil
}

func (s *paintingService) UpdatePainting(ctx context.Context, input ports.UpdatePaintingInput) (*domain.Painting, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("update painting: %w", err)
	}
	if existing.ArtistID != input.ActorID {
		return nil, domain.ErrForbidden
	}

	cat, err := s.cats.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("update painting: %w", err)
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Year = input.Year
	existing.Medium = input.Medium
	existing.Dimensions = input.Dimensions
	existing.ImageURL = input.ImageURL
	existing.IsFeatured = input.IsFeatured
	existing.CategoryID = cat.ID
	existing.CategoryName = cat.Name
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update painting: %w", err)
	}

	s.invalidateFeatured(ctx)
	return existing, nil
}

func (s *paintingService) DeletePainting(ctx context.Context, id, actorID int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete painting: %w", err)
	}
	if existing.ArtistID != actorID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete painting: %w", err)
	}

	s.invalidateFeatured(ctx)
	s.log.Info().Int("id", id).Int("artist_id", actorID).Msg("painting deleted")
	return nil
}

func (s *paintingService) MyPaintings(ctx context.Context, artistID, page, limit int) (*ports.PaintingPage, error) {
	return s.ListPaintings(ctx, ports.ListPaintingsFilter{
		ArtistID: artistID,
		Page:     page,
		Limit:    limit,
	})
}

// FeaturedPaintings serves the home view's featured strip cache-first.
func (s *paintingService) FeaturedPaintings(ctx context.Context, limit int) ([]domain.Painting, error) {
	if limit <= 0 {
		limit = 6
	}

	if s.cache != nil {
		cached, err := s.cache.GetFeatured(ctx, limit)
		if err != nil {
			s.log.Warn().Err(err).Msg("featured cache read failed, falling back to repository")
		} else if cached != nil {
			return cached, nil
		}
	}

	items, _, err := s.repo.List(ctx, ports.ListPaintingsFilter{Featured: true, Page: 1, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("featured paintings: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetFeatured(ctx, limit, items); err != nil {
			s.log.Warn().Err(err).Msg("failed to populate featured cache")
		}
	}
	return items, nil
}

func (s *paintingService) invalidateFeatured(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFeatured(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate featured cache")
	}
}
