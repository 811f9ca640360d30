package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/api/metrics"
	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	PaintingID int    `json:"painting_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required,max=2000"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type commentPageResponse struct {
	Items []domain.Comment `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Pages int              `json:"pages"`
}

// List returns a page of comments.
//
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        painting_id  query  int  false  "Filter by painting"
// @Param        user_id      query  int  false  "Filter by user"
// @Param        page         query  int  false  "Page number (1-based)"
// @Param        limit        query  int  false  "Page size (max 100)"
// @Success      200  {object}  commentPageResponse
// @Router       /api/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	page, err := h.service.ListComments(c.Request().Context(), ports.ListCommentsFilter{
		PaintingID: queryInt(c, "painting_id"),
		UserID:     queryInt(c, "user_id"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commentPageResponse{
		Items: page.Items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.Pages,
	})
}

// Create stores a new comment by the acting user.
//
// @Summary      Comment on a painting
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      createCommentRequest  true  "Comment submission"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	comment, err := h.service.CreateComment(c.Request().Context(), ports.CommentInput{
		PaintingID: req.PaintingID,
		Content:    req.Content,
		UserID:     actor.ID,
		UserName:   displayName(actor),
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}

// Update replaces a comment's content. Only its author may edit.
//
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Comment id"
// @Param        body  body      updateCommentRequest  true  "New content"
// @Success      200   {object}  domain.Comment
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	comment, err := h.service.UpdateComment(c.Request().Context(), id, req.Content, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete removes a comment. Only its author may delete.
//
// @Summary      Delete a comment
// @Tags         comments
// @Param        id  path  int  true  "Comment id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteComment(c.Request().Context(), id, actor.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
