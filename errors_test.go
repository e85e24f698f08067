package portal_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	portal "github.com/swdepot/go-portal"
)

func TestErrorClassificationHelpers(t *testing.T) {
	assert.True(t, portal.IsUnauthenticated(portal.ErrSessionExpired))
	assert.True(t, portal.IsForbidden(portal.ErrForbidden))
	assert.True(t, portal.IsNotFound(portal.ErrNotFound))
	assert.True(t, portal.IsNetworkFailure(portal.ErrNetworkFailure))

	assert.False(t, portal.IsUnauthenticated(portal.ErrForbidden))
	assert.False(t, portal.IsForbidden(portal.ErrSessionExpired))
	assert.False(t, portal.IsNotFound(nil))
	assert.False(t, portal.IsNetworkFailure(errors.New("plain")))
}

func TestErrorClassificationSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("listing software: %w", portal.ErrSessionExpired)
	assert.True(t, portal.IsUnauthenticated(wrapped))
}

func TestStatusCodeFromError(t *testing.T) {
	assert.Equal(t, 0, portal.StatusCodeFromError(nil))
	assert.Equal(t, 0, portal.StatusCodeFromError(errors.New("plain")))
	assert.Equal(t, 0, portal.StatusCodeFromError(portal.ErrNetworkFailure))

	tagged := portal.ErrNotFound.Clone().WithMetadata(map[string]any{"status": 404})
	assert.Equal(t, 404, portal.StatusCodeFromError(tagged))
}
