package portal

import (
	"context"
)

// RequestService wraps the software-request endpoints: users petition for a
// package, ops review the petition.
type RequestService struct {
	client *Client
}

func NewRequestService(client *Client) *RequestService {
	return &RequestService{client: client}
}

func (s *RequestService) Create(ctx context.Context, request SoftwareRequest) (*SoftwareRequest, error) {
	created := &SoftwareRequest{}
	if err := s.client.Post(ctx, "/requests", request, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *RequestService) List(ctx context.Context, params PageParams) (*Page[SoftwareRequest], error) {
	page := &Page[SoftwareRequest]{}
	if err := s.client.Get(ctx, "/requests", params.values(), page); err != nil {
		return nil, err
	}
	return page, nil
}

// Review submits an ops decision on a pending request.
func (s *RequestService) Review(ctx context.Context, id int64, decision ReviewDecision) (*SoftwareRequest, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}

	reviewed := &SoftwareRequest{}
	if err := s.client.Post(ctx, "/requests/"+itoa64(id)+"/review", decision, reviewed); err != nil {
		return nil, err
	}
	return reviewed, nil
}
