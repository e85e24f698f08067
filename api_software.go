package portal

import (
	"context"
	"io"
)

// SoftwareService wraps the software catalog endpoints. Pure pass-through
// request builders; the pipeline supplies auth and error classification.
type SoftwareService struct {
	client *Client
}

func NewSoftwareService(client *Client) *SoftwareService {
	return &SoftwareService{client: client}
}

// SoftwareListParams filters the catalog listing.
type SoftwareListParams struct {
	PageParams
	Category string
	Search   string
}

func (s *SoftwareService) List(ctx context.Context, params SoftwareListParams) (*Page[SoftwareSummary], error) {
	q := params.values()
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}

	page := &Page[SoftwareSummary]{}
	if err := s.client.Get(ctx, "/software", q, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *SoftwareService) Get(ctx context.Context, id int64) (*Software, error) {
	software := &Software{}
	if err := s.client.Get(ctx, "/software/"+itoa64(id), nil, software); err != nil {
		return nil, err
	}
	return software, nil
}

func (s *SoftwareService) Create(ctx context.Context, software Software) (*Software, error) {
	created := &Software{}
	if err := s.client.Post(ctx, "/software", software, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *SoftwareService) Update(ctx context.Context, id int64, software Software) (*Software, error) {
	updated := &Software{}
	if err := s.client.Put(ctx, "/software/"+itoa64(id), software, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SoftwareService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/software/"+itoa64(id), nil)
}

// UploadVersion publishes a release file for a software record.
func (s *SoftwareService) UploadVersion(ctx context.Context, softwareID int64, filename string, content io.Reader) (*SoftwareVersion, error) {
	version := &SoftwareVersion{}
	path := "/software/" + itoa64(softwareID) + "/versions"
	if err := s.client.Upload(ctx, path, "file", filename, content, version); err != nil {
		return nil, err
	}
	return version, nil
}

func (s *SoftwareService) DeleteVersion(ctx context.Context, softwareID, versionID int64) error {
	path := "/software/" + itoa64(softwareID) + "/versions/" + itoa64(versionID)
	return s.client.Delete(ctx, path, nil)
}

// Categories returns the category names used by the catalog filter.
func (s *SoftwareService) Categories(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.client.Get(ctx, "/software/categories", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// VersionDownloadLogs lists the recorded downloads of one version.
func (s *SoftwareService) VersionDownloadLogs(ctx context.Context, versionID int64) (*Page[DownloadLog], error) {
	q := PageParams{}.values()
	q.Set("version_id", itoa64(versionID))

	page := &Page[DownloadLog]{}
	if err := s.client.Get(ctx, "/downloads/logs", q, page); err != nil {
		return nil, err
	}
	return page, nil
}

// UploadLogo replaces the software's logo image.
func (s *SoftwareService) UploadLogo(ctx context.Context, softwareID int64, filename string, content io.Reader) (*Software, error) {
	software := &Software{}
	path := "/software/" + itoa64(softwareID) + "/logo"
	if err := s.client.Upload(ctx, path, "file", filename, content, software); err != nil {
		return nil, err
	}
	return software, nil
}
