package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/api/middleware"
	"github.com/artgallery/gallery-service/internal/core/policy"
	"github.com/artgallery/gallery-service/internal/core/session"
)

func catchAll(t *testing.T, store *session.Store, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := NewViewHandler(policy.NewGuard(store, nil))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CatchAll(c); err != nil {
		t.Fatalf("CatchAll(%q): %v", path, err)
	}
	return rec
}

func TestViewHandler_CatchAll_UnknownPathRedirectsHome(t *testing.T) {
	rec := catchAll(t, session.New(session.Options{}), "/no/such/view")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect home, got %q", loc)
	}
}

func TestViewHandler_CatchAll_RendersMatchedView(t *testing.T) {
	store := session.New(session.Options{})
	store.Login("art_lover", "")

	rec := catchAll(t, store, "/gallery")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp viewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.View != "gallery" {
		t.Fatalf("deep link must echo the matched view name, got %q", resp.View)
	}
	if resp.User == nil || resp.User.Username != "art_lover" {
		t.Fatalf("deep link must carry the session identity, got %+v", resp.User)
	}
}

func TestViewHandler_CatchAll_AnonymousPublicView(t *testing.T) {
	rec := catchAll(t, session.New(session.Options{}), "/login")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp viewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.View != "login" || resp.User != nil {
		t.Fatalf("anonymous login view must render without a user, got %+v", resp)
	}
}

func TestViewHandler_CatchAll_DenyMatchesGuardShape(t *testing.T) {
	store := session.New(session.Options{})
	store.Login("art_lover", "")

	rec := catchAll(t, store, "/upload")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var resp middleware.DenyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.RequiredRole != "artist" || resp.Username != "art_lover" || resp.CurrentRole != "enthusiast" {
		t.Fatalf("deep-linked deny must carry the full notice, got %+v", resp)
	}
	if resp.Error == "" {
		t.Fatalf("deny body must carry the notice message")
	}
}
