package policy

import (
	"strings"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

// Route declares the access requirement for one view pattern. Patterns are
// slash-separated; a segment starting with ':' matches any single non-empty
// segment.
type Route struct {
	Pattern     string
	Requirement Requirement
}

// RouteTable resolves navigation targets to their declared requirement.
// First match wins; declaration order is preserved.
type RouteTable struct {
	routes []Route
}

// NewRouteTable builds a table from the given routes.
func NewRouteTable(routes ...Route) *RouteTable {
	return &RouteTable{routes: append([]Route(nil), routes...)}
}

// Match returns the requirement of the first route whose pattern matches
// path, or false when no pattern matches.
func (t *RouteTable) Match(path string) (Requirement, bool) {
	r, ok := t.MatchRoute(path)
	return r.Requirement, ok
}

// MatchRoute returns the first route whose pattern matches path, or false
// when no pattern matches.
func (t *RouteTable) MatchRoute(path string) (Route, bool) {
	for _, r := range t.routes {
		if matchPattern(r.Pattern, path) {
			return r, true
		}
	}
	return Route{}, false
}

// Routes returns a copy of the declared routes in order.
func (t *RouteTable) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

func matchPattern(pattern, path string) bool {
	ps := splitPath(pattern)
	xs := splitPath(path)
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// DefaultRoutes is the application's view map: auth screens are public,
// browsing views need a login, and upload/management views are artist-only.
func DefaultRoutes() *RouteTable {
	return NewRouteTable(
		Route{Pattern: "/login", Requirement: Public()},
		Route{Pattern: "/register", Requirement: Public()},
		Route{Pattern: "/", Requirement: Authenticated()},
		Route{Pattern: "/gallery", Requirement: Authenticated()},
		Route{Pattern: "/paintings/:id", Requirement: Authenticated()},
		Route{Pattern: "/artists", Requirement: Authenticated()},
		Route{Pattern: "/profile", Requirement: Authenticated()},
		Route{Pattern: "/upload", Requirement: RequireRole(domain.RoleArtist)},
		Route{Pattern: "/my-paintings", Requirement: RequireRole(domain.RoleArtist)},
	)
}
