package portal

import (
	"context"
	"net/url"
)

var _ Authenticator = &AuthService{}

// AuthService is the thin translation layer over the portal's auth
// endpoints. Each method is a single delegated request: no retry, no
// caching, failures propagate as the pipeline classified them.
type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a token envelope. The endpoint expects
// the credentials form-encoded.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	res := &LoginResponse{}
	if err := s.client.PostForm(ctx, "/auth/login", form, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, reg Registration) (*Profile, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	profile := &Profile{}
	if err := s.client.Post(ctx, "/auth/register", reg, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CurrentUser fetches the profile behind the current bearer token.
func (s *AuthService) CurrentUser(ctx context.Context) (*Profile, error) {
	profile := &Profile{}
	if err := s.client.Get(ctx, "/auth/me", nil, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
