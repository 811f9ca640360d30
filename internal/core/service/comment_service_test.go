package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

func newCommentFixture(t *testing.T) (ports.CommentService, *stubPaintingRepo) {
	t.Helper()
	paintings := newStubPaintingRepo()
	if _, err := paintings.Insert(context.Background(), &domain.Painting{Title: "Sunset", ArtistID: 2}); err != nil {
		t.Fatalf("seed painting: %v", err)
	}
	svc := NewCommentService(newStubCommentRepo(), paintings, zerolog.Nop())
	return svc, paintings
}

func TestCommentService_Create(t *testing.T) {
	svc, paintings := newCommentFixture(t)

	c, err := svc.CreateComment(context.Background(), ports.CommentInput{
		PaintingID: 1, Content: "lovely light", UserID: 100, UserName: "art_lover",
	})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if c.ID == 0 || c.UserName != "art_lover" {
		t.Fatalf("unexpected comment: %+v", c)
	}

	p, _ := paintings.FindByID(context.Background(), 1)
	if p.CommentCount != 1 {
		t.Fatalf("comment count must be refreshed, got %d", p.CommentCount)
	}
}

func TestCommentService_Create_EmptyContent(t *testing.T) {
	svc, _ := newCommentFixture(t)

	if _, err := svc.CreateComment(context.Background(), ports.CommentInput{PaintingID: 1, Content: "   ", UserID: 100}); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestCommentService_Create_UnknownPainting(t *testing.T) {
	svc, _ := newCommentFixture(t)

	if _, err := svc.CreateComment(context.Background(), ports.CommentInput{PaintingID: 404, Content: "hi", UserID: 100}); !errors.Is(err, domain.ErrPaintingNotFound) {
		t.Fatalf("expected ErrPaintingNotFound, got %v", err)
	}
}

func TestCommentService_Update_AuthorOnly(t *testing.T) {
	svc, _ := newCommentFixture(t)
	c, _ := svc.CreateComment(context.Background(), ports.CommentInput{PaintingID: 1, Content: "v1", UserID: 100})

	if _, err := svc.UpdateComment(context.Background(), c.ID, "v2", 101); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-author, got %v", err)
	}

	updated, err := svc.UpdateComment(context.Background(), c.ID, "v2", 100)
	if err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if updated.Content != "v2" {
		t.Fatalf("expected updated content, got %q", updated.Content)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Fatalf("updated_at must move forward")
	}
}

func TestCommentService_Delete_AuthorOnly(t *testing.T) {
	svc, paintings := newCommentFixture(t)
	c, _ := svc.CreateComment(context.Background(), ports.CommentInput{PaintingID: 1, Content: "bye", UserID: 100})

	if err := svc.DeleteComment(context.Background(), c.ID, 101); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-author, got %v", err)
	}
	if err := svc.DeleteComment(context.Background(), c.ID, 100); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}

	p, _ := paintings.FindByID(context.Background(), 1)
	if p.CommentCount != 0 {
		t.Fatalf("comment count must be refreshed after delete, got %d", p.CommentCount)
	}
}

func TestCommentService_List_FiltersByPainting(t *testing.T) {
	svc, paintings := newCommentFixture(t)
	if _, err := paintings.Insert(context.Background(), &domain.Painting{Title: "Other", ArtistID: 2}); err != nil {
		t.Fatalf("seed second painting: %v", err)
	}

	_, _ = svc.CreateComment(context.Background(), ports.CommentInput{PaintingID: 1, Content: "a", UserID: 100})
	_, _ = svc.CreateComment(context.Background(), ports.CommentInput{PaintingID: 2, Content: "b", UserID: 100})
	_, _ = svc.CreateComment(context.Background(), ports.CommentInput{PaintingID: 1, Content: "c", UserID: 101})

	page, err := svc.ListComments(context.Background(), ports.ListCommentsFilter{PaintingID: 1})
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("expected 2 comments on painting 1, got %d", page.Total)
	}
	for _, c := range page.Items {
		if c.PaintingID != 1 {
			t.Fatalf("foreign comment leaked: %+v", c)
		}
	}
}
