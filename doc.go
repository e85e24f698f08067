// Package portal is the Go client for the swdepot software-distribution
// admin portal: a persisted authentication session, a bearer-token request
// pipeline, and a role-aware navigation guard, plus thin service wrappers
// for every portal resource.
//
// Session lifecycle:
//   - SessionStore owns the bearer token and the user profile. Both are
//     restored from a Storage collaborator at construction time and written
//     through on every mutation, so a new process resumes the previous
//     session without a network round trip.
//   - Logout clears memory and storage in one call and is idempotent. The
//     request pipeline invokes it exactly once when the backend answers 401.
//
// Request pipeline:
//   - Client wraps net/http. The outbound stage attaches the session token
//     as an Authorization bearer header; the inbound stage classifies
//     failures through an ordered status table, emits a user-facing Notice,
//     and re-raises a categorized error. The pipeline never swallows errors
//     and never retries.
//
// Navigation:
//   - EvaluateRoute is a pure, total decision function over a RoutePolicy
//     and the current session state. Navigator owns the route table and
//     applies the decisions; policies can be declared in YAML.
package portal
