package portal

import (
	"context"
)

// DownloadService wraps the download audit endpoints.
type DownloadService struct {
	client *Client
}

func NewDownloadService(client *Client) *DownloadService {
	return &DownloadService{client: client}
}

// DownloadLogParams filters the download log listing.
type DownloadLogParams struct {
	PageParams
	VersionID int64
}

func (s *DownloadService) Logs(ctx context.Context, params DownloadLogParams) (*Page[DownloadLog], error) {
	q := params.values()
	if params.VersionID > 0 {
		q.Set("version_id", itoa64(params.VersionID))
	}

	page := &Page[DownloadLog]{}
	if err := s.client.Get(ctx, "/downloads/logs", q, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *DownloadService) Stats(ctx context.Context) (*DownloadStats, error) {
	stats := &DownloadStats{}
	if err := s.client.Get(ctx, "/downloads/stats", nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
