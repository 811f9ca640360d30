package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/api/metrics"
	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

type RatingHandler struct {
	service ports.RatingService
}

func NewRatingHandler(service ports.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

type rateRequest struct {
	PaintingID int `json:"painting_id" validate:"required,gt=0"`
	Score      int `json:"score" validate:"required,min=1,max=5"`
}

type ratingPageResponse struct {
	Items []domain.Rating `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Pages int             `json:"pages"`
}

// List returns a page of ratings.
//
// @Summary      List ratings
// @Tags         ratings
// @Produce      json
// @Param        painting_id  query  int  false  "Filter by painting"
// @Param        user_id      query  int  false  "Filter by user"
// @Param        page         query  int  false  "Page number (1-based)"
// @Param        limit        query  int  false  "Page size (max 100)"
// @Success      200  {object}  ratingPageResponse
// @Router       /api/ratings [get]
func (h *RatingHandler) List(c echo.Context) error {
	page, err := h.service.ListRatings(c.Request().Context(), ports.ListRatingsFilter{
		PaintingID: queryInt(c, "painting_id"),
		UserID:     queryInt(c, "user_id"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratingPageResponse{
		Items: page.Items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.Pages,
	})
}

// Rate submits or replaces the caller's rating for a painting.
//
// @Summary      Rate a painting
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        body  body      rateRequest  true  "Rating submission"
// @Success      201   {object}  domain.Rating
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/ratings [post]
func (h *RatingHandler) Rate(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	rating, err := h.service.Rate(c.Request().Context(), ports.RateInput{
		PaintingID: req.PaintingID,
		Score:      req.Score,
		UserID:     actor.ID,
		UserName:   displayName(actor),
	})
	if err != nil {
		metrics.RatingsSubmittedTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.RatingsSubmittedTotal.WithLabelValues("recorded").Inc()
	return c.JSON(http.StatusCreated, rating)
}

// Delete removes a rating. Only its author may delete.
//
// @Summary      Delete a rating
// @Tags         ratings
// @Param        id  path  int  true  "Rating id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/ratings/{id} [delete]
func (h *RatingHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteRating(c.Request().Context(), id, actor.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
