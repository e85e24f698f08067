package portal

import (
	"context"
)

// ConfigService wraps the runtime configuration endpoints, keyed by name.
type ConfigService struct {
	client *Client
}

func NewConfigService(client *Client) *ConfigService {
	return &ConfigService{client: client}
}

func (s *ConfigService) List(ctx context.Context) ([]ConfigEntry, error) {
	var entries []ConfigEntry
	if err := s.client.Get(ctx, "/configs", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *ConfigService) Get(ctx context.Context, key string) (*ConfigEntry, error) {
	entry := &ConfigEntry{}
	if err := s.client.Get(ctx, "/configs/"+key, nil, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ConfigService) Create(ctx context.Context, entry ConfigEntry) (*ConfigEntry, error) {
	created := &ConfigEntry{}
	if err := s.client.Post(ctx, "/configs", entry, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ConfigService) Update(ctx context.Context, key string, entry ConfigEntry) (*ConfigEntry, error) {
	updated := &ConfigEntry{}
	if err := s.client.Put(ctx, "/configs/"+key, entry, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ConfigService) Delete(ctx context.Context, key string) error {
	return s.client.Delete(ctx, "/configs/"+key, nil)
}
