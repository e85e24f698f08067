package portal

// RoutePolicy is the static access declaration attached to a navigable
// destination. Unset fields default to false; policies never change at
// runtime.
type RoutePolicy struct {
	RequiresAuth  bool `yaml:"requires_auth" json:"requires_auth,omitempty"`
	RequiresOps   bool `yaml:"requires_ops" json:"requires_ops,omitempty"`
	RequiresAdmin bool `yaml:"requires_admin" json:"requires_admin,omitempty"`
}

// Decision is the outcome of a guard evaluation. Exactly one applies to any
// (policy, session) pair.
type Decision int

const (
	// DecisionAllow lets the transition through unmodified.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sends the visitor to the login page.
	DecisionRedirectLogin
	// DecisionRedirectLanding sends the visitor to the default
	// authenticated landing page.
	DecisionRedirectLanding
	// DecisionRedirectOpsLanding sends the visitor to the ops landing page.
	DecisionRedirectOpsLanding
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectLanding:
		return "redirect-landing"
	case DecisionRedirectOpsLanding:
		return "redirect-ops-landing"
	default:
		return "unknown"
	}
}

// EvaluateRoute decides whether a transition to the destination may proceed.
// It is pure: no side effects, no suspension, and a total answer for every
// input. Precedence, first match wins:
//
//  1. destination requires auth and the session has no token
//  2. destination requires ops-or-above and the session is not ops
//  3. destination requires admin and the session is not admin
//  4. destination is the login page and a token is already present
//  5. allow
//
// loginPath identifies the login destination for rule 4.
func EvaluateRoute(policy RoutePolicy, dest, loginPath string, session SessionState) Decision {
	switch {
	case policy.RequiresAuth && session.Token() == "":
		return DecisionRedirectLogin
	case policy.RequiresOps && !session.IsOps():
		return DecisionRedirectLanding
	case policy.RequiresAdmin && !session.IsAdmin():
		return DecisionRedirectOpsLanding
	case dest == loginPath && session.Token() != "":
		return DecisionRedirectLanding
	default:
		return DecisionAllow
	}
}
