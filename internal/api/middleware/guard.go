package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/api/metrics"
	"github.com/artgallery/gallery-service/internal/core/policy"
)

// Context keys set for downstream handlers once the guard renders a view.
const (
	ContextIdentity = "identity"
	ContextUsername = "username"
	ContextRole     = "role"
)

// DenyResponse is the JSON body of every deny decision, whether it comes
// from a registered route's guard or from the catch-all path resolver.
type DenyResponse struct {
	Error        string `json:"error"`
	RequiredRole string `json:"required_role"`
	Username     string `json:"username"`
	CurrentRole  string `json:"current_role"`
}

// RenderDeny writes the 403 deny body for a notice.
func RenderDeny(c echo.Context, n policy.Notice) error {
	return c.JSON(http.StatusForbidden, DenyResponse{
		Error:        n.Message(),
		RequiredRole: string(n.RequiredRole),
		Username:     n.Username,
		CurrentRole:  string(n.CurrentRole),
	})
}

// Guard evaluates the access policy for a view's declared requirement on
// every request. Redirect decisions become a 303 with a Location header;
// deny decisions become a 403 carrying the inline notice. On render the
// session identity (when any) is injected into context.
func Guard(g *policy.Guard, req policy.Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := g.Evaluate(req)
			metrics.GuardDecisionsTotal.WithLabelValues(req.String(), decisionLabel(decision)).Inc()

			switch decision.Kind {
			case policy.DecisionRedirect:
				return c.Redirect(http.StatusSeeOther, decision.Target)

			case policy.DecisionDeny:
				return RenderDeny(c, decision.Notice)
			}

			if snap := g.Session(); snap.Authenticated {
				c.Set(ContextIdentity, snap.Identity)
				c.Set(ContextUsername, snap.Identity.Username)
				c.Set(ContextRole, string(snap.Identity.Role))
			}
			return next(c)
		}
	}
}

func decisionLabel(d policy.Decision) string {
	switch d.Kind {
	case policy.DecisionRedirect:
		return "redirect"
	case policy.DecisionDeny:
		return "deny"
	default:
		return "render"
	}
}
