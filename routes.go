package portal

import (
	"io"
	"os"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"gopkg.in/yaml.v3"
)

// Route is one navigable destination and its access declaration. A route
// with a Redirect forwards to another destination after its own policy
// passes, the way /admin lands on the dashboard.
type Route struct {
	Path     string      `yaml:"path"`
	Name     string      `yaml:"name,omitempty"`
	Redirect string      `yaml:"redirect,omitempty"`
	Policy   RoutePolicy `yaml:",inline"`
}

// RouteTable holds the portal's navigable destinations. Lookup matches
// exact paths first, then patterns with :param segments.
type RouteTable struct {
	routes []Route
}

// ErrUnknownRoute is returned when navigating to a destination the table
// does not declare.
var ErrUnknownRoute = goerrors.New("unknown destination", goerrors.CategoryNotFound).
	WithCode(goerrors.CodeNotFound)

func NewRouteTable(routes ...Route) *RouteTable {
	return &RouteTable{routes: routes}
}

// DefaultRouteTable declares the portal's standard page layout: public
// login, authenticated user pages, and the ops/admin area.
func DefaultRouteTable() *RouteTable {
	return NewRouteTable(
		Route{Path: "/login", Name: "login"},
		Route{Path: "/", Name: "home", Policy: RoutePolicy{RequiresAuth: true}},
		Route{Path: "/software", Name: "software-list", Policy: RoutePolicy{RequiresAuth: true}},
		Route{Path: "/software/:id", Name: "software-detail", Policy: RoutePolicy{RequiresAuth: true}},
		Route{Path: "/profile", Name: "profile", Policy: RoutePolicy{RequiresAuth: true}},
		Route{Path: "/requests", Name: "requests", Policy: RoutePolicy{RequiresAuth: true}},
		Route{Path: "/my-downloads", Name: "my-downloads", Policy: RoutePolicy{RequiresAuth: true}},
		Route{Path: "/admin", Name: "admin", Redirect: "/admin/dashboard", Policy: RoutePolicy{RequiresAuth: true, RequiresOps: true}},
		Route{Path: "/admin/dashboard", Name: "admin-dashboard", Policy: RoutePolicy{RequiresAuth: true, RequiresOps: true}},
		Route{Path: "/admin/requests", Name: "admin-requests", Policy: RoutePolicy{RequiresAuth: true, RequiresOps: true}},
		Route{Path: "/admin/vulnerabilities", Name: "admin-vulnerabilities", Policy: RoutePolicy{RequiresAuth: true, RequiresOps: true}},
		Route{Path: "/admin/categories", Name: "admin-categories", Policy: RoutePolicy{RequiresAuth: true, RequiresOps: true}},
		Route{Path: "/admin/config", Name: "admin-config", Policy: RoutePolicy{RequiresAuth: true, RequiresOps: true}},
		Route{Path: "/admin/users", Name: "admin-users", Policy: RoutePolicy{RequiresAuth: true, RequiresOps: true, RequiresAdmin: true}},
	)
}

type routeDocument struct {
	Routes []Route `yaml:"routes"`
}

// LoadRouteTable reads a YAML route declaration. Policies are configuration
// data; the table is read once and never mutated at runtime.
func LoadRouteTable(r io.Reader) (*RouteTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "unable to read route table")
	}

	var doc routeDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "unable to parse route table")
	}

	for _, route := range doc.Routes {
		if route.Path == "" {
			return nil, goerrors.New("route declaration is missing a path", goerrors.CategoryValidation)
		}
	}

	return NewRouteTable(doc.Routes...), nil
}

// LoadRouteTableFile reads a YAML route declaration from disk.
func LoadRouteTableFile(path string) (*RouteTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "unable to open route table")
	}
	defer f.Close()
	return LoadRouteTable(f)
}

// Resolve finds the route declaring dest. Exact matches win over :param
// pattern matches.
func (t *RouteTable) Resolve(dest string) (Route, bool) {
	for _, route := range t.routes {
		if route.Path == dest {
			return route, true
		}
	}

	for _, route := range t.routes {
		if matchPattern(route.Path, dest) {
			return route, true
		}
	}

	return Route{}, false
}

// Routes returns the declared routes in declaration order.
func (t *RouteTable) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

func matchPattern(pattern, dest string) bool {
	if !strings.Contains(pattern, ":") {
		return false
	}

	want := strings.Split(strings.Trim(pattern, "/"), "/")
	have := strings.Split(strings.Trim(dest, "/"), "/")
	if len(want) != len(have) {
		return false
	}

	for i := range want {
		if strings.HasPrefix(want[i], ":") {
			if have[i] == "" {
				return false
			}
			continue
		}
		if want[i] != have[i] {
			return false
		}
	}
	return true
}
