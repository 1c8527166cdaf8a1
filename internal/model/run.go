package model

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// DownloadRun represents one fetch-and-persist invocation
type DownloadRun struct {
	ID         string
	URL        string
	Status     RunStatus
	BytesRead  int64     // body bytes read so far
	TotalBytes int64     // Content-Length, -1 if unknown
	Format     string    // decoder name reported by image.Decode (e.g. "png")
	Width      int       // decoded image width in pixels
	Height     int       // decoded image height in pixels
	OutputPath string    // path of the stored JPEG
	FileSize   int64     // stored file size in bytes
	LastError  string    // last error message if any
	StartedAt  time.Time // when the run started
	FinishedAt time.Time // when the run reached a terminal state
}

// NewDownloadRun creates a run in the Idle state
func NewDownloadRun(id, rawURL string) *DownloadRun {
	return &DownloadRun{
		ID:         id,
		URL:        rawURL,
		Status:     RunStatusIdle,
		TotalBytes: -1,
		StartedAt:  time.Now(),
	}
}

// Progress returns the fraction of the body read, 0 when the size is unknown
func (r *DownloadRun) Progress() float64 {
	if r.TotalBytes <= 0 {
		return 0
	}
	p := float64(r.BytesRead) / float64(r.TotalBytes)
	if p > 1 {
		return 1
	}
	return p
}

// Duration returns how long the run took, or has taken so far
func (r *DownloadRun) Duration() time.Duration {
	if r.StartedAt.IsZero() {
		return 0
	}
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// GetDisplayTitle returns the last path segment of the URL, or the URL itself
func (r *DownloadRun) GetDisplayTitle() string {
	if r.URL == "" {
		return ""
	}

	parsed, err := url.Parse(r.URL)
	if err != nil || parsed.Path == "" || parsed.Path == "/" {
		return r.URL
	}

	name := path.Base(strings.TrimSuffix(parsed.Path, "/"))
	if name == "" || name == "." || name == "/" {
		return r.URL
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

// Clone returns a copy safe to hand to other goroutines
func (r *DownloadRun) Clone() *DownloadRun {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
