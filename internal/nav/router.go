// Package nav provides the navigation host: it owns the current route,
// runs the registered guard hooks on every transition, and applies their
// outcomes. Redirect policy lives in the guard, not here; the router only
// follows the outcomes it is handed.
package nav

import (
	"sync"

	"github.com/harborbank/teller/internal/guard"
	"github.com/harborbank/teller/internal/log"
	"github.com/harborbank/teller/internal/routes"
)

// maxRedirects bounds outcome-chasing so a misconfigured hook pair cannot
// ping-pong forever.
const maxRedirects = 8

// Hook is a beforeEach-style guard invoked on every navigation attempt.
type Hook func(target, from routes.Route) guard.Outcome

// Router serializes navigation attempts and tracks the current route.
//
// Hooks run in registration order; the first non-allow outcome wins. Each
// attempt completes, including its storage reads, before the next one is
// evaluated.
type Router struct {
	mu       sync.Mutex
	current  routes.Route
	hooks    []Hook
	onChange []func(routes.Route)
	logger   *log.Logger
}

// NewRouter creates a router starting at the given route. The initial
// route is set without consulting hooks; call Navigate to apply policy.
func NewRouter(initial routes.Route, logger *log.Logger) *Router {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Router{
		current: initial,
		logger:  logger.With("component", "nav"),
	}
}

// BeforeEach registers a hook to run on every navigation attempt.
func (r *Router) BeforeEach(hook Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hooks = append(r.hooks, hook)
}

// OnChange registers a callback invoked with the new route after a
// navigation lands. Callbacks run while the navigation is being applied
// and must not call Navigate themselves.
func (r *Router) OnChange(fn func(routes.Route)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.onChange = append(r.onChange, fn)
}

// Current returns the route the router is on.
func (r *Router) Current() routes.Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current
}

// Navigate attempts to move to target, running the hooks and following
// redirect outcomes until one lands or is denied.
func (r *Router) Navigate(target routes.Route) {
	r.mu.Lock()
	defer r.mu.Unlock()

	from := r.current
	for hops := 0; hops <= maxRedirects; hops++ {
		outcome := r.runHooks(target, from)

		switch outcome.Decision {
		case guard.DecisionAllow:
			r.land(target)
			return

		case guard.DecisionRedirect:
			if outcome.Target == target {
				// A redirect onto itself means the target is already the
				// right place; landing avoids a loop.
				r.land(target)
				return
			}
			target = outcome.Target

		case guard.DecisionDeny:
			r.logger.Warn("navigation denied", "target", string(target), "from", string(from))
			return
		}
	}

	r.logger.Error("redirect chain exceeded limit, staying put",
		"target", string(target),
		"from", string(from),
	)
}

// runHooks evaluates the hooks in order; the first non-allow outcome
// short-circuits.
func (r *Router) runHooks(target, from routes.Route) guard.Outcome {
	for _, hook := range r.hooks {
		if outcome := hook(target, from); outcome.Decision != guard.DecisionAllow {
			return outcome
		}
	}
	return guard.Allow()
}

// land commits the navigation and notifies listeners. Aliases resolve
// here so listeners only ever see concrete destinations.
func (r *Router) land(target routes.Route) {
	r.current = routes.Resolve(target)
	for _, fn := range r.onChange {
		fn(r.current)
	}
}
