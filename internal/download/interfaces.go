package download

import (
	"context"
	"time"

	"github.com/ytget/image-downloader/internal/model"
)

// Runner runs a single fetch-and-persist invocation.
type Runner interface {
	Run(ctx context.Context, rawURL string) (*Result, error)
}

// Downloader defines the interface for the download service.
type Downloader interface {
	Runner

	SetUpdateCallback(func(*model.DownloadRun))
	LastRun() (*model.DownloadRun, bool)
	Runs() []*model.DownloadRun

	// SetStorage sets the directory and file name used by later runs
	SetStorage(dir, filename string)
	Storage() (dir, filename string)

	// SetJPEGQuality sets the quality used when re-encoding the image
	SetJPEGQuality(quality int)

	// SetTimeout sets the HTTP request timeout, 0 disables it
	SetTimeout(timeout time.Duration)
}
