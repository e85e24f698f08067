package portal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	portal "github.com/swdepot/go-portal"
)

func TestAuthServiceLoginSendsFormEncodedCredentials(t *testing.T) {
	var gotContentType, gotUsername, gotPassword string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotUsername = r.PostFormValue("username")
		gotPassword = r.PostFormValue("password")

		json.NewEncoder(w).Encode(portal.LoginResponse{
			AccessToken: "tok-123",
			TokenType:   "bearer",
			User:        &portal.Profile{Username: "alice", Role: "ops"},
		})
	}))
	defer srv.Close()

	auth := portal.NewAuthService(portal.NewClient(portal.StaticConfig{BaseURL: srv.URL}))

	res, err := auth.Login(context.Background(), portal.Credentials{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "alice", gotUsername)
	assert.Equal(t, "hunter2", gotPassword)
	assert.Equal(t, "tok-123", res.AccessToken)
	require.NotNil(t, res.User)
	assert.Equal(t, "alice", res.User.Username)
}

func TestAuthServiceLoginRejectsInvalidCredentials(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	auth := portal.NewAuthService(portal.NewClient(portal.StaticConfig{BaseURL: srv.URL}))

	_, err := auth.Login(context.Background(), portal.Credentials{Username: "alice"})
	require.Error(t, err)
	assert.False(t, called, "validation failures never reach the backend")
}

func TestAuthServiceLoginSurfacesBackendRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}))
	defer srv.Close()

	auth := portal.NewAuthService(portal.NewClient(portal.StaticConfig{BaseURL: srv.URL}))

	_, err := auth.Login(context.Background(), portal.Credentials{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, portal.IsUnauthenticated(err))
}

func TestAuthServiceRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reg portal.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))

		json.NewEncoder(w).Encode(portal.Profile{ID: 7, Username: reg.Username, Role: "user"})
	}))
	defer srv.Close()

	auth := portal.NewAuthService(portal.NewClient(portal.StaticConfig{BaseURL: srv.URL}))

	profile, err := auth.Register(context.Background(), portal.Registration{
		Username: "bob",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, "bob", profile.Username)
}

func TestAuthServiceRegisterValidates(t *testing.T) {
	auth := portal.NewAuthService(portal.NewClient(portal.DefaultConfig()))

	_, err := auth.Register(context.Background(), portal.Registration{
		Username: "bob",
		Email:    "nope",
		Password: "hunter22",
	})
	assert.Error(t, err)
}

func TestAuthServiceCurrentUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(portal.Profile{Username: "alice", Role: "admin", IsActive: true})
	}))
	defer srv.Close()

	client := portal.NewClient(portal.StaticConfig{BaseURL: srv.URL}).
		WithTokenSource(portal.TokenSourceFunc(func() string { return "tok-123" }))
	auth := portal.NewAuthService(client)

	profile, err := auth.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, portal.RoleAdmin, profile.Role)
}
