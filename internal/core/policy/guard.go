// Package policy decides, per navigation target, whether the requester may
// proceed. The guard reads the session store at decision time and holds no
// state of its own; re-evaluating a navigation always starts from scratch.
package policy

import (
	"fmt"

	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/session"
)

// Redirect targets used by the decision table.
const (
	PathHome  = "/"
	PathLogin = "/login"
)

type requirementKind int

const (
	reqPublic requirementKind = iota
	reqAuthenticated
	reqRole
)

// Requirement is a view's declared access level: Public, Authenticated, or
// RequireRole. The closed variant set keeps the guard's decision table
// exhaustive instead of scattering ad hoc boolean checks per view.
type Requirement struct {
	kind requirementKind
	role domain.Role
}

// Public marks a view reachable only by anonymous visitors (login,
// registration); authenticated users are redirected home.
func Public() Requirement { return Requirement{kind: reqPublic} }

// Authenticated marks a view reachable by any logged-in identity.
func Authenticated() Requirement { return Requirement{kind: reqAuthenticated} }

// RequireRole marks a view reachable only by logged-in identities with the
// given role.
func RequireRole(role domain.Role) Requirement {
	return Requirement{kind: reqRole, role: role}
}

// String renders the requirement for logs and metrics labels.
func (r Requirement) String() string {
	switch r.kind {
	case reqPublic:
		return "public"
	case reqAuthenticated:
		return "authenticated"
	default:
		return "role:" + string(r.role)
	}
}

type decisionKind int

const (
	// DecisionRender allows the target view.
	DecisionRender decisionKind = iota
	// DecisionRedirect sends the requester to Decision.Target instead.
	DecisionRedirect
	// DecisionDeny shows an inline denial notice; navigation itself is not
	// blocked and nothing is redirected.
	DecisionDeny
)

// Decision is the guard's verdict for one navigation attempt.
type Decision struct {
	Kind   decisionKind
	Target string // redirect target, set when Kind == DecisionRedirect
	Notice Notice // denial details, set when Kind == DecisionDeny
}

// Notice carries the denial details surfaced to the user: the role the view
// requires and who is currently logged in.
type Notice struct {
	RequiredRole domain.Role `json:"required_role"`
	Username     string      `json:"username"`
	CurrentRole  domain.Role `json:"current_role"`
}

// Message renders the human-readable denial text.
func (n Notice) Message() string {
	return fmt.Sprintf("this section is only available for users with the %q role; you are currently logged in as %s (%s)",
		n.RequiredRole, n.Username, n.CurrentRole)
}

func render() Decision { return Decision{Kind: DecisionRender} }

func redirect(to string) Decision {
	return Decision{Kind: DecisionRedirect, Target: to}
}

// Decide applies the decision table to one requirement and one session
// snapshot. It is a pure function so the table is centrally testable.
func Decide(req Requirement, snap session.Snapshot) Decision {
	switch req.kind {
	case reqPublic:
		if snap.Authenticated {
			return redirect(PathHome)
		}
		return render()

	case reqAuthenticated:
		if !snap.Authenticated {
			return redirect(PathLogin)
		}
		return render()

	default: // reqRole
		if !snap.Authenticated {
			return redirect(PathLogin)
		}
		if snap.Identity.Role != req.role {
			return Decision{Kind: DecisionDeny, Notice: Notice{
				RequiredRole: req.role,
				Username:     snap.Identity.Username,
				CurrentRole:  snap.Identity.Role,
			}}
		}
		return render()
	}
}

// SessionReader is the read-only view of the session store the guard needs.
// The guard never mutates the store.
type SessionReader interface {
	Snapshot() session.Snapshot
}

// Guard binds the decision table to a session store and a route table.
type Guard struct {
	sessions SessionReader
	table    *RouteTable
}

// NewGuard builds a Guard. A nil table falls back to the default routes.
func NewGuard(sessions SessionReader, table *RouteTable) *Guard {
	if table == nil {
		table = DefaultRoutes()
	}
	return &Guard{sessions: sessions, table: table}
}

// Session returns the session state at call time.
func (g *Guard) Session() session.Snapshot {
	return g.sessions.Snapshot()
}

// Routes returns the guard's route table.
func (g *Guard) Routes() *RouteTable {
	return g.table
}

// Evaluate decides one requirement against the session state at call time.
func (g *Guard) Evaluate(req Requirement) Decision {
	return Decide(req, g.sessions.Snapshot())
}

// ResolvePath looks up the navigation target in the route table and decides.
// Unmatched paths resolve to an unconditional redirect home.
func (g *Guard) ResolvePath(path string) Decision {
	req, ok := g.table.Match(path)
	if !ok {
		return redirect(PathHome)
	}
	return Decide(req, g.sessions.Snapshot())
}
