package portal

import (
	"time"
)

// Profile is the authenticated user record returned by the portal. A nil
// profile means the session role is unknown and every role predicate
// answers false.
type Profile struct {
	ID        int64      `json:"id,omitempty"`
	Username  string     `json:"username,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      Role       `json:"role,omitempty"`
	IsActive  bool       `json:"is_active,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// LoginResponse is the token envelope the login endpoint returns.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type,omitempty"`
	User        *Profile `json:"user,omitempty"`
}

// Software is a distributable package tracked by the portal.
type Software struct {
	ID          int64             `json:"id,omitempty"`
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category,omitempty"`
	IconURL     string            `json:"icon_url,omitempty"`
	Logo        string            `json:"logo,omitempty"`
	OfficialURL string            `json:"official_url,omitempty"`
	CreatedAt   *time.Time        `json:"created_at,omitempty"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
	Versions    []SoftwareVersion `json:"versions,omitempty"`
}

// SoftwareSummary is the flattened row the list endpoint returns.
type SoftwareSummary struct {
	ID             int64  `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category,omitempty"`
	IconURL        string `json:"icon_url,omitempty"`
	Logo           string `json:"logo,omitempty"`
	OfficialURL    string `json:"official_url,omitempty"`
	LatestVersion  string `json:"latest_version,omitempty"`
	VersionCount   int    `json:"version_count,omitempty"`
	TotalDownloads int64  `json:"total_downloads,omitempty"`
}

// SoftwareVersion is one uploaded release of a Software record.
type SoftwareVersion struct {
	ID            int64      `json:"id,omitempty"`
	SoftwareID    int64      `json:"software_id,omitempty"`
	Version       string     `json:"version,omitempty"`
	FileName      string     `json:"file_name,omitempty"`
	FileSize      int64      `json:"file_size,omitempty"`
	FileHash      string     `json:"file_hash,omitempty"`
	UploadTime    *time.Time `json:"upload_time,omitempty"`
	DownloadCount int64      `json:"download_count,omitempty"`
	ReleaseNotes  string     `json:"release_notes,omitempty"`
}

// Category groups software records for browsing.
type Category struct {
	ID            int64      `json:"id,omitempty"`
	Name          string     `json:"name,omitempty"`
	Description   string     `json:"description,omitempty"`
	SortOrder     int        `json:"sort_order,omitempty"`
	SoftwareCount int        `json:"software_count,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ConfigEntry is a keyed runtime setting managed from the admin area.
type ConfigEntry struct {
	ID          int64      `json:"id,omitempty"`
	Key         string     `json:"key,omitempty"`
	Value       string     `json:"value,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// DownloadLog is one recorded download of a software version.
type DownloadLog struct {
	ID           int64      `json:"id,omitempty"`
	UserID       int64      `json:"user_id,omitempty"`
	Username     string     `json:"username,omitempty"`
	SoftwareName string     `json:"software_name,omitempty"`
	Version      string     `json:"version,omitempty"`
	DownloadTime *time.Time `json:"download_time,omitempty"`
	IPAddress    string     `json:"ip_address,omitempty"`
}

// DownloadStats aggregates download activity for the admin dashboard.
type DownloadStats struct {
	TotalDownloads int64            `json:"total_downloads"`
	UniqueUsers    int64            `json:"unique_users"`
	TopSoftware    []map[string]any `json:"top_software,omitempty"`
}

// RequestStatus tracks the review state of a software request.
type RequestStatus = string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// SoftwareRequest is a user-submitted petition to add a package to the
// catalog, reviewed by ops.
type SoftwareRequest struct {
	ID            int64         `json:"id,omitempty"`
	SoftwareName  string        `json:"software_name,omitempty"`
	Version       string        `json:"version,omitempty"`
	DownloadURL   string        `json:"download_url,omitempty"`
	Description   string        `json:"description,omitempty"`
	Category      string        `json:"category,omitempty"`
	Logo          string        `json:"logo,omitempty"`
	OfficialURL   string        `json:"official_url,omitempty"`
	Status        RequestStatus `json:"status,omitempty"`
	ApplicantID   int64         `json:"applicant_id,omitempty"`
	ApplicantName string        `json:"applicant_name,omitempty"`
	ReviewerID    int64         `json:"reviewer_id,omitempty"`
	ReviewerName  string        `json:"reviewer_name,omitempty"`
	ReviewComment string        `json:"review_comment,omitempty"`
	ReviewedAt    *time.Time    `json:"reviewed_at,omitempty"`
	CreatedAt     *time.Time    `json:"created_at,omitempty"`
}

// Page is the paging envelope list endpoints wrap their items in.
type Page[T any] struct {
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}
