package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/api/middleware"
	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/policy"
)

// viewNames maps route-table patterns to the screen names the SPA renders.
var viewNames = map[string]string{
	"/login":         "login",
	"/register":      "register",
	"/":              "home",
	"/gallery":       "gallery",
	"/paintings/:id": "painting_detail",
	"/artists":       "artists",
	"/profile":       "profile",
	"/upload":        "upload",
	"/my-paintings":  "my_paintings",
}

// ViewHandler serves the navigation endpoints the SPA asks before rendering
// a screen. Each guarded view answers with its name and the session identity
// so the client can render without a second round trip; the guard middleware
// has already turned redirects and denials into 303/403 by the time these
// handlers run.
type ViewHandler struct {
	guard *policy.Guard
}

func NewViewHandler(guard *policy.Guard) *ViewHandler {
	return &ViewHandler{guard: guard}
}

type viewResponse struct {
	View string           `json:"view"`
	User *domain.Identity `json:"user,omitempty"`
}

// Render returns the handler for one named view.
func (h *ViewHandler) Render(view string) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp := viewResponse{View: view}
		if identity, ok := c.Get(middleware.ContextIdentity).(domain.Identity); ok {
			resp.User = &identity
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CatchAll resolves any unregistered path against the route table, so deep
// links answer exactly like the registered routes: same redirects, same deny
// body, same view descriptor. Unknown paths redirect home.
func (h *ViewHandler) CatchAll(c echo.Context) error {
	route, ok := h.guard.Routes().MatchRoute(c.Request().URL.Path)
	if !ok {
		return c.Redirect(http.StatusSeeOther, policy.PathHome)
	}

	decision := h.guard.Evaluate(route.Requirement)
	switch decision.Kind {
	case policy.DecisionRedirect:
		return c.Redirect(http.StatusSeeOther, decision.Target)
	case policy.DecisionDeny:
		return middleware.RenderDeny(c, decision.Notice)
	}

	resp := viewResponse{View: viewNames[route.Pattern]}
	if snap := h.guard.Session(); snap.Authenticated {
		identity := snap.Identity
		resp.User = &identity
	}
	return c.JSON(http.StatusOK, resp)
}
