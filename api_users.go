package portal

import (
	"context"
)

// UserService wraps the admin user-management endpoints.
type UserService struct {
	client *Client
}

func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

// UserUpsert is the create/update payload for an account.
type UserUpsert struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (s *UserService) List(ctx context.Context, params PageParams) (*Page[Profile], error) {
	page := &Page[Profile]{}
	if err := s.client.Get(ctx, "/users", params.values(), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *UserService) Create(ctx context.Context, user UserUpsert) (*Profile, error) {
	created := &Profile{}
	if err := s.client.Post(ctx, "/users", user, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id int64, user UserUpsert) (*Profile, error) {
	updated := &Profile{}
	if err := s.client.Put(ctx, "/users/"+itoa64(id), user, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/users/"+itoa64(id), nil)
}
