package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/policy"
	"github.com/artgallery/gallery-service/internal/core/session"
)

func newGuardedContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGuard_RenderInjectsIdentity(t *testing.T) {
	store := session.New(session.Options{})
	if !store.Login("painter1", "") {
		t.Fatalf("seed login failed")
	}
	g := policy.NewGuard(store, nil)

	c, rec := newGuardedContext(t)

	called := false
	handler := Guard(g, policy.Authenticated())(func(c echo.Context) error {
		called = true
		if c.Get(ContextUsername) != "painter1" {
			t.Fatalf("expected username in context, got %v", c.Get(ContextUsername))
		}
		if c.Get(ContextRole) != "artist" {
			t.Fatalf("expected role in context, got %v", c.Get(ContextRole))
		}
		identity, ok := c.Get(ContextIdentity).(domain.Identity)
		if !ok || identity.ID != 2 {
			t.Fatalf("expected identity 2 in context, got %v", c.Get(ContextIdentity))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_RedirectsAnonymousToLogin(t *testing.T) {
	g := policy.NewGuard(session.New(session.Options{}), nil)

	c, rec := newGuardedContext(t)

	handler := Guard(g, policy.Authenticated())(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestGuard_RedirectsAuthenticatedOffPublicView(t *testing.T) {
	store := session.New(session.Options{})
	store.Login("art_lover", "")
	g := policy.NewGuard(store, nil)

	c, rec := newGuardedContext(t)

	handler := Guard(g, policy.Public())(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect home, got %q", loc)
	}
}

func TestGuard_DeniesWrongRole(t *testing.T) {
	store := session.New(session.Options{})
	store.Login("art_lover", "")
	g := policy.NewGuard(store, nil)

	c, rec := newGuardedContext(t)

	handler := Guard(g, policy.RequireRole(domain.RoleArtist))(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp DenyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.RequiredRole != "artist" || resp.Username != "art_lover" || resp.CurrentRole != "enthusiast" {
		t.Fatalf("unexpected deny payload: %+v", resp)
	}
}

func TestGuard_AnonymousPublicViewRenders(t *testing.T) {
	g := policy.NewGuard(session.New(session.Options{}), nil)

	c, rec := newGuardedContext(t)

	called := false
	handler := Guard(g, policy.Public())(func(c echo.Context) error {
		called = true
		if c.Get(ContextIdentity) != nil {
			t.Fatalf("anonymous request should carry no identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected render, got %d", rec.Code)
	}
}
