package portal

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeSessionExpired = "SESSION_EXPIRED"
	TextCodeForbidden      = "FORBIDDEN"
	TextCodeNotFound       = "NOT_FOUND"
	TextCodeServerError    = "SERVER_ERROR"
	TextCodeBackendError   = "BACKEND_ERROR"
	TextCodeNetworkError   = "NETWORK_ERROR"
)

// ErrSessionExpired is returned when the backend rejects the bearer token.
// The request pipeline tears the session down before raising it.
var ErrSessionExpired = goerrors.New("session expired, please sign in again", goerrors.CategoryAuth).
	WithTextCode(TextCodeSessionExpired).
	WithCode(goerrors.CodeUnauthorized)

// ErrForbidden is returned when the backend answers 403.
var ErrForbidden = goerrors.New("insufficient permissions", goerrors.CategoryAuthz).
	WithTextCode(TextCodeForbidden)

// ErrNotFound is returned when the backend answers 404.
var ErrNotFound = goerrors.New("requested resource does not exist", goerrors.CategoryNotFound).
	WithTextCode(TextCodeNotFound).
	WithCode(goerrors.CodeNotFound)

// ErrServerError is returned when the backend answers 500.
var ErrServerError = goerrors.New("server error, try again later", goerrors.CategoryInternal).
	WithTextCode(TextCodeServerError)

// ErrNetworkFailure is returned when no response was received at all.
var ErrNetworkFailure = goerrors.New("network error, check your connection", goerrors.CategoryOperation).
	WithTextCode(TextCodeNetworkError)

// IsUnauthenticated reports whether err was classified as a 401 rejection.
func IsUnauthenticated(err error) bool {
	return hasTextCode(err, TextCodeSessionExpired)
}

// IsForbidden reports whether err was classified as a 403 rejection.
func IsForbidden(err error) bool {
	return hasTextCode(err, TextCodeForbidden)
}

// IsNotFound reports whether err was classified as a 404 rejection.
func IsNotFound(err error) bool {
	return hasTextCode(err, TextCodeNotFound)
}

// IsNetworkFailure reports whether err was raised without any backend response.
func IsNetworkFailure(err error) bool {
	return hasTextCode(err, TextCodeNetworkError)
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == code
}

// StatusCodeFromError recovers the backend HTTP status recorded by the
// pipeline, or 0 when the error did not come from a backend response.
func StatusCodeFromError(err error) int {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return 0
	}
	if richErr.Metadata == nil {
		return 0
	}
	if status, ok := richErr.Metadata["status"].(int); ok {
		return status
	}
	return 0
}
