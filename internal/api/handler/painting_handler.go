package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/api/metrics"
	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

// PaintingHandler exposes painting CRUD plus the featured and my-paintings
// views.
type PaintingHandler struct {
	service ports.PaintingService
}

func NewPaintingHandler(service ports.PaintingService) *PaintingHandler {
	return &PaintingHandler{service: service}
}

type paintingRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Year        int     `json:"year"`
	Medium      string  `json:"medium"`
	Dimensions  string  `json:"dimensions"`
	ImageURL    string  `json:"image_url"`
	IsFeatured  bool    `json:"is_featured"`
	CategoryID  int     `json:"category_id" validate:"required,gt=0"`
}

type paintingPageResponse struct {
	Items []domain.Painting `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Pages int               `json:"pages"`
}

func pagePaintings(page *ports.PaintingPage) paintingPageResponse {
	return paintingPageResponse{
		Items: page.Items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.Pages,
	}
}

// queryInt parses an optional integer query parameter, returning 0 when the
// parameter is absent or malformed.
func queryInt(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))
	return v
}

func paramID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// List returns a page of paintings.
//
// @Summary      List paintings
// @Tags         paintings
// @Produce      json
// @Param        category_id  query  int     false  "Filter by category"
// @Param        artist_id    query  int     false  "Filter by artist"
// @Param        search       query  string  false  "Partial match on title or description"
// @Param        featured     query  bool    false  "Only featured paintings"
// @Param        page         query  int     false  "Page number (1-based)"
// @Param        limit        query  int     false  "Page size (max 100)"
// @Success      200  {object}  paintingPageResponse
// @Router       /api/paintings [get]
func (h *PaintingHandler) List(c echo.Context) error {
	filter := ports.ListPaintingsFilter{
		CategoryID: queryInt(c, "category_id"),
		ArtistID:   queryInt(c, "artist_id"),
		Search:     c.QueryParam("search"),
		Featured:   c.QueryParam("featured") == "true",
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	}

	page, err := h.service.ListPaintings(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagePaintings(page))
}

// Get returns one painting by id.
//
// @Summary      Get a painting
// @Tags         paintings
// @Produce      json
// @Param        id   path      int  true  "Painting id"
// @Success      200  {object}  domain.Painting
// @Failure      404  {object}  map[string]string
// @Router       /api/paintings/{id} [get]
func (h *PaintingHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	painting, err := h.service.GetPainting(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, painting)
}

// Featured returns up to limit featured paintings.
//
// @Summary      Featured paintings
// @Tags         paintings
// @Produce      json
// @Param        limit  query  int  false  "Maximum results (default 6)"
// @Success      200  {array}  domain.Painting
// @Router       /api/paintings/featured [get]
func (h *PaintingHandler) Featured(c echo.Context) error {
	limit := queryInt(c, "limit")
	paintings, err := h.service.FeaturedPaintings(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paintings)
}

// Create stores a new painting owned by the acting artist.
//
// @Summary      Create a painting
// @Tags         paintings
// @Accept       json
// @Produce      json
// @Param        body  body      paintingRequest  true  "Painting details"
// @Success      201   {object}  domain.Painting
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/paintings [post]
func (h *PaintingHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req paintingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	painting, err := h.service.CreatePainting(c.Request().Context(), ports.CreatePaintingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Year:        req.Year,
		Medium:      req.Medium,
		Dimensions:  req.Dimensions,
		ImageURL:    req.ImageURL,
		IsFeatured:  req.IsFeatured,
		CategoryID:  req.CategoryID,
		ArtistID:    actor.ID,
		ArtistName:  displayName(actor),
	})
	if err != nil {
		return err
	}

	metrics.PaintingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, painting)
}

// Update edits a painting. Only the owning artist may edit.
//
// @Summary      Update a painting
// @Tags         paintings
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Painting id"
// @Param        body  body      paintingRequest  true  "Painting details"
// @Success      200   {object}  domain.Painting
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/paintings/{id} [put]
func (h *PaintingHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req paintingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	painting, err := h.service.UpdatePainting(c.Request().Context(), ports.UpdatePaintingInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Year:        req.Year,
		Medium:      req.Medium,
		Dimensions:  req.Dimensions,
		ImageURL:    req.ImageURL,
		IsFeatured:  req.IsFeatured,
		CategoryID:  req.CategoryID,
		ActorID:     actor.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, painting)
}

// Delete removes a painting. Only the owning artist may delete.
//
// @Summary      Delete a painting
// @Tags         paintings
// @Param        id  path  int  true  "Painting id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/paintings/{id} [delete]
func (h *PaintingHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeletePainting(c.Request().Context(), id, actor.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Mine lists the paintings owned by the acting artist.
//
// @Summary      My paintings
// @Tags         paintings
// @Produce      json
// @Param        page   query  int  false  "Page number (1-based)"
// @Param        limit  query  int  false  "Page size (max 100)"
// @Success      200  {object}  paintingPageResponse
// @Router       /api/paintings/mine [get]
func (h *PaintingHandler) Mine(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	page, err := h.service.MyPaintings(c.Request().Context(), actor.ID, queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagePaintings(page))
}
