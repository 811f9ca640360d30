package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

type commentService struct {
	repo      ports.CommentRepository
	paintings ports.PaintingRepository
	log       zerolog.Logger
}

// NewCommentService returns a CommentService implementation.
func NewCommentService(repo ports.CommentRepository, paintings ports.PaintingRepository, log zerolog.Logger) ports.CommentService {
	return &commentService{repo: repo, paintings: paintings, log: log}
}

func (s *commentService) ListComments(ctx context.Context, filter ports.ListCommentsFilter) (*ports.CommentPage, error) {
	filter.Page, filter.Limit = clampPage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &ports.CommentPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
		Pages: pageCount(total, filter.Limit),
	}, nil
}

func (s *commentService) CreateComment(ctx context.Context, input ports.CommentInput) (*domain.Comment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.ErrInvalidPayload
	}

	if _, err := s.paintings.FindByID(ctx, input.PaintingID); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.Comment{
		PaintingID: input.PaintingID,
		UserID:     input.UserID,
		Content:    input.Content,
		UserName:   input.UserName,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.refreshCount(ctx, input.PaintingID)
	s.log.Info().Int("painting_id", input.PaintingID).Int("user_id", input.UserID).Msg("comment created")
	return created, nil
}

func (s *commentService) UpdateComment(ctx context.Context, id int, content string, actorID int) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidPayload
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if existing.UserID != actorID {
		return nil, domain.ErrForbidden
	}

	existing.Content = content
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return existing, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id, actorID int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if existing.UserID != actorID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.refreshCount(ctx, existing.PaintingID)
	return nil
}

func (s *commentService) refreshCount(ctx context.Context, paintingID int) {
	count, err := s.repo.CountForPainting(ctx, paintingID)
	if err != nil {
		s.log.Warn().Err(err).Int("painting_id", paintingID).Msg("failed to count comments")
		return
	}
	if err := s.paintings.UpdateCommentCount(ctx, paintingID, count); err != nil {
		s.log.Warn().Err(err).Int("painting_id", paintingID).Msg("failed to store comment count")
	}
}
