package guard

import (
	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
)

// Decision is the navigation outcome for a route check.
type Decision string

const (
	Allow         Decision = "allow"
	RedirectLogin Decision = "redirect_login"
	RedirectHome  Decision = "redirect_home"
)

// Route describes a protected destination. Zero requirements means the
// route is public.
type Route struct {
	Path         string
	RequiresAuth bool
	RequiredRole enums.UserRole
}

// SessionReader is the slice of the session store the gate needs.
type SessionReader interface {
	IsAuthenticated() bool
	HasRole(role enums.UserRole) bool
}

// Gate answers "may the current session enter this route". It is
// navigation UX only: no backend call is made and no access decision is
// trusted from here. Authorization is enforced server-side; a bypassed
// gate only yields 401/403 responses.
type Gate struct {
	session SessionReader
}

func NewGate(session SessionReader) (*Gate, error) {
	if session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session reader is required")
	}
	return &Gate{session: session}, nil
}

// Check resolves a route against the current session. Unauthenticated
// visitors to protected routes go to login; authenticated users lacking
// the required role go home rather than to login, since re-authenticating
// would not help them.
func (g *Gate) Check(route Route) Decision {
	requiresAuth := route.RequiresAuth || route.RequiredRole != ""
	if !requiresAuth {
		return Allow
	}
	if !g.session.IsAuthenticated() {
		return RedirectLogin
	}
	if route.RequiredRole != "" && !g.session.HasRole(route.RequiredRole) {
		return RedirectHome
	}
	return Allow
}
