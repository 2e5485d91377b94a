package guard

import (
	"fmt"

	"github.com/harborbank/teller/internal/routes"
)

// Decision is the kind of outcome a guard evaluation produces.
type Decision int

const (
	// DecisionAllow lets the navigation proceed to its target.
	DecisionAllow Decision = iota
	// DecisionRedirect sends the navigation to a different target.
	DecisionRedirect
	// DecisionDeny stops the navigation with no alternative target.
	DecisionDeny
)

// String returns the string representation of the decision.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirect:
		return "redirect"
	case DecisionDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// Outcome is the result of one guard evaluation. It is produced fresh per
// navigation attempt and has no persisted identity. Target is only set
// for redirects.
type Outcome struct {
	Decision Decision
	Target   routes.Route
}

// Allow returns an outcome letting the navigation proceed.
func Allow() Outcome {
	return Outcome{Decision: DecisionAllow}
}

// RedirectTo returns an outcome sending the navigation to target.
func RedirectTo(target routes.Route) Outcome {
	return Outcome{Decision: DecisionRedirect, Target: target}
}

// Deny returns an outcome stopping the navigation outright. The built-in
// policy never produces it; it exists for callers installing stricter
// hooks.
func Deny() Outcome {
	return Outcome{Decision: DecisionDeny}
}

// String returns a readable form for logs and the debug CLI.
func (o Outcome) String() string {
	if o.Decision == DecisionRedirect {
		return fmt.Sprintf("redirect(%s)", o.Target)
	}
	return o.Decision.String()
}
