package portal

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Storage is the durable two-slot store behind the session: one slot for the
// bearer token, one for the serialized profile. Get returns the empty string
// for a missing key; Delete on a missing key is a no-op.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Authenticator performs the portal auth calls the session store delegates
// to. Implementations do not retry and do not cache; failures propagate
// unchanged.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (*LoginResponse, error)
	Register(ctx context.Context, reg Registration) (*Profile, error)
	CurrentUser(ctx context.Context) (*Profile, error)
}

// SessionState is the read-only view of the session the navigation guard
// consumes. *SessionStore satisfies it.
type SessionState interface {
	Token() string
	IsOps() bool
	IsAdmin() bool
}

// TokenSource is what the request pipeline reads at dispatch time. It is a
// subset of SessionState so tests can stub it with a bare func.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string {
	if f == nil {
		return ""
	}
	return f()
}

// Config holds client options
type Config interface {
	GetBaseURL() string
	GetRequestTimeout() int
	GetLoginPath() string
	GetLandingPath() string
	GetOpsLandingPath() string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] PORTAL "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] PORTAL "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] PORTAL "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
