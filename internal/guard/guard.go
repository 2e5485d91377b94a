// Package guard implements the navigation guard: the single place where
// client-side access policy is enforced. Every screen transition runs
// through Evaluate, which combines the target's static policy entry with
// the current session predicates and produces an allow, redirect, or deny
// outcome.
//
// The guard is advisory UX routing only. The backend authorizes every
// operation independently; nothing here is a security boundary.
package guard

import (
	"github.com/harborbank/teller/internal/log"
	"github.com/harborbank/teller/internal/routes"
)

// Session is the view of the session store the guard consumes.
// *session.Manager satisfies it.
type Session interface {
	IsAuthenticated() bool
	HasRole(role routes.Role) bool
	IsApproved() bool
	ClearSession() error
}

// Guard evaluates navigation attempts. It keeps no state of its own: each
// evaluation is a pure function of the target, the session snapshot, and
// the static policy table.
type Guard struct {
	session Session
	logger  *log.Logger
}

// New creates a guard over the given session.
func New(session Session, logger *log.Logger) *Guard {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Guard{
		session: session,
		logger:  logger.With("component", "guard"),
	}
}

// Evaluate decides the outcome for a navigation from the current route to
// target. The checks run in a fixed order; later checks assume earlier
// ones passed.
func (g *Guard) Evaluate(target, from routes.Route) Outcome {
	policy := routes.PolicyFor(target)
	outcome := g.evaluate(target, policy)

	g.logger.Debug("navigation evaluated",
		"target", string(target),
		"from", string(from),
		"outcome", outcome.String(),
	)
	return outcome
}

func (g *Guard) evaluate(target routes.Route, policy routes.Policy) Outcome {
	authenticated := g.session.IsAuthenticated()

	// An already-authenticated user has no business on the entry pages;
	// send them home. Welcome is the one entry page that can itself be
	// home (the unapproved customer's waiting page), in which case it
	// stays reachable.
	if routes.EntryPages[target] && authenticated {
		home := g.Home()
		if home == target {
			return Allow()
		}
		return RedirectTo(home)
	}

	// Public routes need nothing further. Root is excluded: it is never a
	// destination in its own right and resolves below.
	if !policy.RequiresAuth && target != routes.Root {
		return Allow()
	}

	if policy.RequiresAuth && !authenticated {
		// Purge whatever stale partial state led here before bouncing to
		// login.
		if err := g.session.ClearSession(); err != nil {
			g.logger.Error("failed to clear stale session", "error", err.Error())
		}
		return RedirectTo(routes.Login)
	}

	// Role mismatch is an authorization failure; there is no distinct
	// forbidden page in this policy.
	if policy.RequiredRole != "" && !g.session.HasRole(policy.RequiredRole) {
		return RedirectTo(routes.Login)
	}

	// Approval gates customers only. Employees have no approval concept
	// and an unapproved customer's sole reachable screen is welcome.
	if policy.RequiresApproval && g.session.HasRole(routes.RoleCustomer) && !g.session.IsApproved() {
		if target != routes.Welcome {
			return RedirectTo(routes.Welcome)
		}
		return Allow()
	}

	// Root always resolves to a role-appropriate landing page, or to
	// login when nobody is signed in.
	if target == routes.Root {
		if authenticated {
			return RedirectTo(g.Home())
		}
		return RedirectTo(routes.Login)
	}

	return Allow()
}

// Home computes the authenticated user's landing page: employees go to
// customer management, approved customers to the ATM, unapproved
// customers to the welcome waiting page. Callers must only invoke it for
// authenticated sessions; it falls back to login otherwise.
func (g *Guard) Home() routes.Route {
	switch {
	case g.session.HasRole(routes.RoleEmployee):
		return routes.EmployeeCustomerManagement
	case g.session.HasRole(routes.RoleCustomer):
		if g.session.IsApproved() {
			return routes.CustomerATM
		}
		return routes.Welcome
	default:
		return routes.Login
	}
}
