package portal

import (
	"context"
)

// CategoryService wraps the software-category endpoints.
type CategoryService struct {
	client *Client
}

func NewCategoryService(client *Client) *CategoryService {
	return &CategoryService{client: client}
}

func (s *CategoryService) List(ctx context.Context, params PageParams) (*Page[Category], error) {
	page := &Page[Category]{}
	if err := s.client.Get(ctx, "/categories", params.values(), page); err != nil {
		return nil, err
	}
	return page, nil
}

// AllNames returns every category name, used to fill selection lists.
func (s *CategoryService) AllNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.client.Get(ctx, "/categories/all", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*Category, error) {
	category := &Category{}
	if err := s.client.Get(ctx, "/categories/"+itoa64(id), nil, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, category Category) (*Category, error) {
	created := &Category{}
	if err := s.client.Post(ctx, "/categories", category, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, category Category) (*Category, error) {
	updated := &Category{}
	if err := s.client.Put(ctx, "/categories/"+itoa64(id), category, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/categories/"+itoa64(id), nil)
}
