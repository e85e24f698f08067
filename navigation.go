package portal

import (
	"sync"

	goerrors "github.com/goliatone/go-errors"
)

// NavigationListener observes committed transitions, e.g. to render the
// destination page.
type NavigationListener func(from, to string)

// ErrNavigationReentered is returned when a listener tries to navigate
// while a transition is still being applied.
var ErrNavigationReentered = goerrors.New("navigation re-entered during transition", goerrors.CategoryConflict).
	WithCode(goerrors.CodeConflict)

// Navigator owns the current location and applies guard decisions. The
// guard stays pure; this is the collaborator that turns its decisions into
// transitions. Evaluation is synchronous and never suspends.
type Navigator struct {
	mu         sync.Mutex
	navigating bool
	current    string

	table    *RouteTable
	session  SessionState
	listener NavigationListener
	logger   Logger

	loginPath      string
	landingPath    string
	opsLandingPath string
}

// NewNavigator starts at the default landing path. The session must already
// be restored: the guard reads it synchronously on the first transition.
func NewNavigator(cfg Config, table *RouteTable, session SessionState) *Navigator {
	return &Navigator{
		table:          table,
		session:        session,
		logger:         defLogger{},
		current:        cfg.GetLandingPath(),
		loginPath:      cfg.GetLoginPath(),
		landingPath:    cfg.GetLandingPath(),
		opsLandingPath: cfg.GetOpsLandingPath(),
	}
}

func (n *Navigator) WithLogger(logger Logger) *Navigator {
	n.logger = logger
	return n
}

func (n *Navigator) WithListener(listener NavigationListener) *Navigator {
	n.listener = listener
	return n
}

// Current returns the committed location.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate requests a transition to dest, applying guard decisions and
// declared redirects until a destination is allowed, then commits it and
// returns the final path. An undeclared destination fails with
// ErrUnknownRoute and leaves the location unchanged.
func (n *Navigator) Navigate(dest string) (string, error) {
	n.mu.Lock()
	if n.navigating {
		n.mu.Unlock()
		return n.current, ErrNavigationReentered
	}
	n.navigating = true
	from := n.current
	n.mu.Unlock()

	final, err := n.settle(dest)

	n.mu.Lock()
	n.navigating = false
	if err == nil {
		n.current = final
	} else {
		final = n.current
	}
	listener := n.listener
	n.mu.Unlock()

	if err != nil {
		return final, err
	}

	if listener != nil && final != from {
		listener(from, final)
	}
	return final, nil
}

// settle follows guard redirects and route redirects to a stable
// destination. The chain is bounded: each hop either terminates or moves to
// a destination the guard has not rejected yet, and repeats mean a
// misconfigured table.
func (n *Navigator) settle(dest string) (string, error) {
	seen := map[string]bool{}

	for {
		if seen[dest] {
			return "", goerrors.New("route redirects form a cycle", goerrors.CategoryInternal).
				WithMetadata(map[string]any{"path": dest})
		}
		seen[dest] = true

		route, ok := n.table.Resolve(dest)
		if !ok {
			return "", ErrUnknownRoute.Clone().WithMetadata(map[string]any{"path": dest})
		}

		decision := EvaluateRoute(route.Policy, dest, n.loginPath, n.session)
		switch decision {
		case DecisionAllow:
			if route.Redirect != "" {
				dest = route.Redirect
				continue
			}
			return dest, nil
		case DecisionRedirectLogin:
			dest = n.loginPath
		case DecisionRedirectLanding:
			dest = n.landingPath
		case DecisionRedirectOpsLanding:
			dest = n.opsLandingPath
		}

		n.logger.Debug("navigation redirected: %s -> %s (%s)", route.Path, dest, decision)
	}
}

// RedirectFunc adapts the navigator for the request pipeline's 401 hook.
// Redirect failures there are logged, not raised: the pipeline's own error
// is already on its way to the caller.
func (n *Navigator) RedirectFunc() RedirectFunc {
	return func(path string) {
		if _, err := n.Navigate(path); err != nil {
			n.logger.Error("forced redirect failed: %v", err)
		}
	}
}
