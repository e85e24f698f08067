package portal

import (
	"context"
	"encoding/json"
	"sync"

	goerrors "github.com/goliatone/go-errors"
)

var _ SessionState = &SessionStore{}

// SessionStore owns the authentication state: the bearer token and the user
// profile. Every mutation writes through to the Storage collaborator; every
// other component reads the session through this store, never around it.
//
// The token and profile are set one after the other during Login, so a
// concurrent reader can observe a token with no profile yet. A nil profile
// always reads as lowest privilege, so the window is harmless.
type SessionStore struct {
	mu       sync.RWMutex
	token    string
	userInfo *Profile

	storage Storage
	auth    Authenticator
	logger  Logger
}

// NewSessionStore restores the persisted session from storage and returns
// the store. Restoration never fails: unreadable or malformed persisted
// state reads as an empty session.
func NewSessionStore(ctx context.Context, storage Storage) *SessionStore {
	s := &SessionStore{
		storage: storage,
		logger:  defLogger{},
	}
	s.restore(ctx)
	return s
}

func (s *SessionStore) WithLogger(logger Logger) *SessionStore {
	s.logger = logger
	return s
}

// WithAuthenticator wires the auth collaborator Login and FetchUserInfo
// delegate to. It is injected after construction because the request
// pipeline behind the authenticator reads this store's token.
func (s *SessionStore) WithAuthenticator(auth Authenticator) *SessionStore {
	s.auth = auth
	return s
}

func (s *SessionStore) restore(ctx context.Context) {
	token, err := s.storage.Get(ctx, StorageKeyToken)
	if err != nil {
		s.logger.Error("session restore: token read failed: %v", err)
		token = ""
	}

	var profile *Profile
	raw, err := s.storage.Get(ctx, StorageKeyUserInfo)
	if err != nil {
		s.logger.Error("session restore: profile read failed: %v", err)
		raw = ""
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			s.logger.Debug("session restore: discarding malformed profile: %v", err)
			profile = nil
		}
	}

	s.mu.Lock()
	s.token = token
	s.userInfo = profile
	s.mu.Unlock()
}

// Token returns the bearer token, empty when unauthenticated.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserInfo returns the current profile, nil when unknown.
func (s *SessionStore) UserInfo() *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userInfo
}

// SetToken stores the token in memory and writes it through to storage.
// The token shape is not validated; an empty string means unauthenticated.
func (s *SessionStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.storage.Set(ctx, StorageKeyToken, token); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unable to persist session token")
	}
	return nil
}

// SetUserInfo stores the profile in memory and writes the serialized record
// through to storage.
func (s *SessionStore) SetUserInfo(ctx context.Context, profile *Profile) error {
	s.mu.Lock()
	s.userInfo = profile
	s.mu.Unlock()

	data, err := json.Marshal(profile)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "unable to serialize profile")
	}

	if err := s.storage.Set(ctx, StorageKeyUserInfo, string(data)); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unable to persist profile")
	}
	return nil
}

// Login authenticates against the portal and commits the returned token and
// profile. On failure the session is left exactly as it was; a token whose
// profile could not be persisted is rolled back rather than kept half-open.
func (s *SessionStore) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	res, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := s.SetToken(ctx, res.AccessToken); err != nil {
		return nil, err
	}
	if err := s.SetUserInfo(ctx, res.User); err != nil {
		if rbErr := s.SetToken(ctx, ""); rbErr != nil {
			s.logger.Error("login rollback failed: %v", rbErr)
		}
		return nil, err
	}

	return res, nil
}

// Logout clears the session and erases both persisted slots. Calling it on
// an already empty session is a no-op.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.userInfo = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, StorageKeyToken); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unable to clear session token")
	}
	if err := s.storage.Delete(ctx, StorageKeyUserInfo); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unable to clear profile")
	}
	return nil
}

// FetchUserInfo refreshes the profile from the identity endpoint. On failure
// the session is unchanged; tearing down a rejected session is the request
// pipeline's call, not this method's.
func (s *SessionStore) FetchUserInfo(ctx context.Context) (*Profile, error) {
	profile, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.SetUserInfo(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *SessionStore) role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userInfo == nil {
		return ParseRole("")
	}
	return ParseRole(string(s.userInfo.Role))
}

// IsAdmin reports whether the session carries the admin role.
func (s *SessionStore) IsAdmin() bool {
	return s.role() == RoleAdmin
}

// IsOps reports whether the session carries at least the ops role.
func (s *SessionStore) IsOps() bool {
	return s.role().IsAtLeast(RoleOps)
}
