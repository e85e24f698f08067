package portal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	portal "github.com/swdepot/go-portal"
)

type recordingSink struct {
	mu      sync.Mutex
	notices []portal.Notice
}

func (r *recordingSink) Notify(_ context.Context, n portal.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
	return nil
}

func (r *recordingSink) kinds() []portal.NoticeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]portal.NoticeKind, len(r.notices))
	for i, n := range r.notices {
		kinds[i] = n.Kind
	}
	return kinds
}

type countingTerminator struct {
	calls int
}

func (c *countingTerminator) Logout(context.Context) error {
	c.calls++
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*portal.Client, *recordingSink, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	sink := &recordingSink{}
	client := portal.NewClient(portal.StaticConfig{BaseURL: srv.URL}).
		WithNoticeSink(sink)
	return client, sink, srv.Close
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, _, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	defer done()

	client.WithTokenSource(portal.TokenSourceFunc(func() string { return "abc" }))

	require.NoError(t, client.Get(context.Background(), "/ping", nil, nil))
	assert.Equal(t, "Bearer abc", gotAuth)
}

func TestClientOmitsBearerWithoutToken(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	client, _, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})
	defer done()

	client.WithTokenSource(portal.TokenSourceFunc(func() string { return "" }))

	require.NoError(t, client.Get(context.Background(), "/ping", nil, nil))
	assert.Equal(t, "", gotAuth)
	assert.False(t, hasHeader)
}

func TestClientSetsRequestID(t *testing.T) {
	var requestID string
	client, _, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	})
	defer done()

	require.NoError(t, client.Get(context.Background(), "/ping", nil, nil))
	assert.NotEmpty(t, requestID)
}

func TestClientUnwrapsSuccessBody(t *testing.T) {
	client, sink, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"username":"alice","role":"ops"}`))
	})
	defer done()

	profile := &portal.Profile{}
	require.NoError(t, client.Get(context.Background(), "/auth/me", nil, profile))
	assert.Equal(t, "alice", profile.Username)
	assert.Empty(t, sink.kinds())
}

func TestClientUnauthorizedTearsDownSessionOnce(t *testing.T) {
	ctx := context.Background()
	storage := portal.NewMemoryStorage()
	store := portal.NewSessionStore(ctx, storage)
	require.NoError(t, store.SetToken(ctx, "stale"))

	var redirected []string

	client, sink, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer done()

	client.
		WithTokenSource(store).
		WithSessionTerminator(store).
		WithRedirect(func(path string) { redirected = append(redirected, path) })

	err := client.Get(ctx, "/software", nil, nil)
	require.Error(t, err)

	assert.True(t, portal.IsUnauthenticated(err))
	assert.Equal(t, "", store.Token())
	assert.Equal(t, []string{"/login"}, redirected)
	assert.Equal(t, []portal.NoticeKind{portal.NoticeSessionExpired}, sink.kinds())
	assert.Equal(t, http.StatusUnauthorized, portal.StatusCodeFromError(err))
}

func TestClientUnauthorizedLogoutCount(t *testing.T) {
	terminator := &countingTerminator{}
	client, _, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer done()

	client.WithSessionTerminator(terminator)

	err := client.Get(context.Background(), "/software", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, terminator.calls)
}

func TestClientFailureClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		kind     portal.NoticeKind
		check    func(t *testing.T, err error)
		teardown bool
	}{
		{
			name:   "forbidden",
			status: http.StatusForbidden,
			kind:   portal.NoticeForbidden,
			check: func(t *testing.T, err error) {
				assert.True(t, portal.IsForbidden(err))
			},
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			kind:   portal.NoticeNotFound,
			check: func(t *testing.T, err error) {
				assert.True(t, portal.IsNotFound(err))
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			kind:   portal.NoticeServerError,
			check: func(t *testing.T, err error) {
				assert.False(t, portal.IsUnauthenticated(err))
			},
		},
		{
			name:   "other status surfaces backend detail",
			status: http.StatusConflict,
			body:   `{"detail":"username taken"}`,
			kind:   portal.NoticeRequestFailed,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "username taken")
			},
		},
		{
			name:   "other status without detail uses generic message",
			status: http.StatusTeapot,
			kind:   portal.NoticeRequestFailed,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "request failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terminator := &countingTerminator{}
			client, sink, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})
			defer done()
			client.WithSessionTerminator(terminator)

			err := client.Get(context.Background(), "/x", nil, nil)
			require.Error(t, err)
			tt.check(t, err)

			assert.Equal(t, []portal.NoticeKind{tt.kind}, sink.kinds())
			assert.Equal(t, tt.status, portal.StatusCodeFromError(err))
			// teardown is exclusive to 401
			assert.Equal(t, 0, terminator.calls)
		})
	}
}

func TestClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	sink := &recordingSink{}
	client := portal.NewClient(portal.StaticConfig{BaseURL: srv.URL, RequestTimeout: 1}).
		WithNoticeSink(sink)

	err := client.Get(context.Background(), "/ping", nil, nil)
	require.Error(t, err)
	assert.True(t, portal.IsNetworkFailure(err))
	assert.Equal(t, []portal.NoticeKind{portal.NoticeNetworkError}, sink.kinds())
	assert.Equal(t, 0, portal.StatusCodeFromError(err))
}

func TestClientNoticeSinkFailureDoesNotMaskError(t *testing.T) {
	client, _, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer done()

	client.WithNoticeSink(portal.NoticeSinkFunc(func(context.Context, portal.Notice) error {
		return assert.AnError
	}))

	err := client.Get(context.Background(), "/missing", nil, nil)
	require.Error(t, err)
	assert.True(t, portal.IsNotFound(err))
}
