package portal

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenInfo is a best-effort decode of the bearer token's claims. The
// portal backend happens to issue JWTs; nothing here verifies the
// signature, and authentication decisions never depend on this. The token
// stays opaque to the session. Used for display, e.g. a whoami expiry hint.
type TokenInfo struct {
	Subject   string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// ErrTokenOpaque is returned when the token does not decode as a JWT.
var ErrTokenOpaque = goerrors.New("token is not inspectable", goerrors.CategoryBadInput)

// InspectToken decodes the claims of token without verifying it.
func InspectToken(token string) (*TokenInfo, error) {
	if token == "" {
		return nil, ErrTokenOpaque
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "token is not inspectable")
	}

	info := &TokenInfo{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		issued := claims.IssuedAt.Time
		info.IssuedAt = &issued
	}
	if claims.ExpiresAt != nil {
		expires := claims.ExpiresAt.Time
		info.ExpiresAt = &expires
	}
	return info, nil
}

// Expired reports whether the decoded expiry has passed. A token with no
// expiry claim never reads as expired.
func (t *TokenInfo) Expired(now time.Time) bool {
	if t == nil || t.ExpiresAt == nil {
		return false
	}
	return now.After(*t.ExpiresAt)
}
