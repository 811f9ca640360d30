package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/api/middleware"
	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

type stubPaintingService struct {
	createFn func(ctx context.Context, input ports.CreatePaintingInput) (*domain.Painting, error)
}

func (s *stubPaintingService) ListPaintings(context.Context, ports.ListPaintingsFilter) (*ports.PaintingPage, error) {
	return &ports.PaintingPage{}, nil
}

func (s *stubPaintingService) GetPainting(context.Context, int) (*domain.Painting, error) {
	return nil, domain.ErrPaintingNotFound
}

func (s *stubPaintingService) CreatePainting(ctx context.Context, input ports.CreatePaintingInput) (*domain.Painting, error) {
	return s.createFn(ctx, input)
}

func (s *stubPaintingService) UpdatePainting(context.Context, ports.UpdatePaintingInput) (*domain.Painting, error) {
	return nil, domain.ErrPaintingNotFound
}

func (s *stubPaintingService) DeletePainting(context.Context, int, int) error {
	return domain.ErrPaintingNotFound
}

func (s *stubPaintingService) MyPaintings(context.Context, int, int, int) (*ports.PaintingPage, error) {
	return &ports.PaintingPage{}, nil
}

func (s *stubPaintingService) FeaturedPaintings(context.Context, int) ([]domain.Painting, error) {
	return nil, nil
}

func createPaintingAs(t *testing.T, actor domain.Identity) ports.CreatePaintingInput {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var got ports.CreatePaintingInput
	stub := &stubPaintingService{
		createFn: func(_ context.Context, input ports.CreatePaintingInput) (*domain.Painting, error) {
			got = input
			return &domain.Painting{ID: 1, Title: input.Title, ArtistName: input.ArtistName}, nil
		},
	}
	h := NewPaintingHandler(stub)

	body := `{"title":"Sunset","image_url":"/uploads/sunset.jpg","category_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/paintings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextIdentity, actor)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	return got
}

func TestPaintingHandler_Create_UsesFullName(t *testing.T) {
	got := createPaintingAs(t, domain.Identity{ID: 2, Username: "painter1", FullName: "Sample Artist", Role: domain.RoleArtist})

	if got.ArtistID != 2 || got.ArtistName != "Sample Artist" {
		t.Fatalf("unexpected artist fields: %+v", got)
	}
}

func TestPaintingHandler_Create_FallsBackToUsername(t *testing.T) {
	got := createPaintingAs(t, domain.Identity{ID: 5, Username: "test", Role: domain.RoleArtist})

	if got.ArtistName != "test" {
		t.Fatalf("empty full name must fall back to the username, got %q", got.ArtistName)
	}
}
