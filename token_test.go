package portal_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	portal "github.com/swdepot/go-portal"
)

func signTestToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspectToken(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := issued.Add(30 * time.Minute)

	token := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	info, err := portal.InspectToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Subject)
	require.NotNil(t, info.IssuedAt)
	assert.True(t, info.IssuedAt.Equal(issued))
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, info.ExpiresAt.Equal(expires))
}

func TestInspectTokenOpaque(t *testing.T) {
	_, err := portal.InspectToken("")
	assert.Error(t, err)

	_, err = portal.InspectToken("not.a.jwt")
	assert.Error(t, err)
}

func TestTokenInfoExpired(t *testing.T) {
	expires := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	token := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	info, err := portal.InspectToken(token)
	require.NoError(t, err)

	assert.False(t, info.Expired(expires.Add(-time.Minute)))
	assert.True(t, info.Expired(expires.Add(time.Minute)))
}

func TestTokenInfoNoExpiryNeverExpires(t *testing.T) {
	token := signTestToken(t, jwt.RegisteredClaims{Subject: "alice"})

	info, err := portal.InspectToken(token)
	require.NoError(t, err)
	assert.False(t, info.Expired(time.Now().Add(100*time.Hour)))
}
