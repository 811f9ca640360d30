package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

// RatingDedup abstracts the duplicate-submission store (Redis). A hit means
// the exact same (painting, user, score) triple was seen recently and the
// write can be skipped.
type RatingDedup interface {
	IsDuplicate(ctx context.Context, paintingID, userID, score int) (bool, error)
	Mark(ctx context.Context, paintingID, userID, score int) error
}

type ratingService struct {
	repo      ports.RatingRepository
	paintings ports.PaintingRepository
	dedup     RatingDedup
	log       zerolog.Logger
}

// NewRatingService returns a RatingService implementation. dedup may be nil.
func NewRatingService(repo ports.RatingRepository, paintings ports.PaintingRepository, dedup RatingDedup, log zerolog.Logger) ports.RatingService {
	return &ratingService{repo: repo, paintings: paintings, dedup: dedup, log: log}
}

func (s *ratingService) ListRatings(ctx context.Context, filter ports.ListRatingsFilter) (*ports.RatingPage, error) {
	filter.Page, filter.Limit = clampPage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	return &ports.RatingPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
		Pages: pageCount(total, filter.Limit),
	}, nil
}

// Rate validates, deduplicates, and upserts a single rating, then refreshes
// the painting's denormalised aggregate.
func (s *ratingService) Rate(ctx context.Context, input ports.RateInput) (*domain.Rating, error) {
	if input.Score < domain.MinRatingScore || input.Score > domain.MaxRatingScore {
		return nil, domain.ErrInvalidScore
	}

	if _, err := s.paintings.FindByID(ctx, input.PaintingID); err != nil {
		return nil, fmt.Errorf("rate painting: %w", err)
	}

	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, input.PaintingID, input.UserID, input.Score)
		if err != nil {
			s.log.Warn().Err(err).Int("painting_id", input.PaintingID).Msg("rating dedup check failed, processing anyway")
		} else if isDup {
			s.log.Debug().Int("painting_id", input.PaintingID).Int("user_id", input.UserID).Msg("duplicate rating skipped")
			existing, _, err := s.repo.List(ctx, ports.ListRatingsFilter{PaintingID: input.PaintingID, UserID: input.UserID, Page: 1, Limit: 1})
			if err == nil && len(existing) == 1 {
				return &existing[0], nil
			}
		}
	}

	rating := &domain.Rating{
		PaintingID: input.PaintingID,
		UserID:     input.UserID,
		Score:      input.Score,
		UserName:   input.UserName,
		CreatedAt:  time.Now().UTC(),
	}

	stored, err := s.repo.Upsert(ctx, rating)
	if err != nil {
		return nil, fmt.Errorf("rate painting: %w", err)
	}

	if s.dedup != nil {
		if markErr := s.dedup.Mark(ctx, input.PaintingID, input.UserID, input.Score); markErr != nil {
			s.log.Warn().Err(markErr).Int("painting_id", input.PaintingID).Msg("failed to set rating dedup key")
		}
	}

	s.refreshStats(ctx, input.PaintingID)

	s.log.Info().
		Int("painting_id", input.PaintingID).
		Int("user_id", input.UserID).
		Int("score", input.Score).
		Msg("rating recorded")
	return stored, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, id, actorID int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	if existing.UserID != actorID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}

	s.refreshStats(ctx, existing.PaintingID)
	return nil
}

// refreshStats recomputes the painting's aggregate rating. Non-fatal: list
// views tolerate a stale aggregate until the next write.
func (s *ratingService) refreshStats(ctx context.Context, paintingID int) {
	avg, count, err := s.repo.Aggregate(ctx, paintingID)
	if err != nil {
		s.log.Warn().Err(err).Int("painting_id", paintingID).Msg("failed to aggregate ratings")
		return
	}
	if err := s.paintings.UpdateRatingStats(ctx, paintingID, avg, count); err != nil {
		s.log.Warn().Err(err).Int("painting_id", paintingID).Msg("failed to store rating stats")
	}
}
