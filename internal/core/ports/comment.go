package ports

import (
	"context"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

// ListCommentsFilter carries query parameters for listing comments.
type ListCommentsFilter struct {
	PaintingID int // optional: 0 = no filter
	UserID     int // optional: 0 = no filter
	Page       int
	Limit      int
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Insert(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id int) (*domain.Comment, error)
	List(ctx context.Context, filter ListCommentsFilter) ([]domain.Comment, int64, error)
	Update(ctx context.Context, c *domain.Comment) error
	Delete(ctx context.Context, id int) error
	CountForPainting(ctx context.Context, paintingID int) (int, error)
}

// CommentInput carries a comment submission. UserID and UserName come from
// the session.
type CommentInput struct {
	PaintingID int
	Content    string
	UserID     int
	UserName   string
}

// CommentPage is one page of comments plus pagination metadata.
type CommentPage struct {
	Items []domain.Comment
	Total int64
	Page  int
	Limit int
	Pages int
}

// CommentService defines comment use cases.
type CommentService interface {
	ListComments(ctx context.Context, filter ListCommentsFilter) (*CommentPage, error)
	CreateComment(ctx context.Context, input CommentInput) (*domain.Comment, error)
	// UpdateComment replaces the content; only the author may edit.
	UpdateComment(ctx context.Context, id int, content string, actorID int) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id, actorID int) error
}
