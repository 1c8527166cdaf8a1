package download

import (
	"context"
	"image"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ytget/image-downloader/internal/compress"
	"github.com/ytget/image-downloader/internal/model"
)

// Service constants
const (
	DefaultFilename  = "downloaded_image.jpg"
	MaxRunHistory    = 20
	ProgressInterval = 100 * time.Millisecond
	RunIDPrefix      = "run-"
)

var _ Downloader = (*Service)(nil)

// Result is the outcome of a successful run
type Result struct {
	Image image.Image
	Run   *model.DownloadRun
}

// Service runs the fetch-and-persist pipeline
type Service struct {
	fetcher *Fetcher
	encoder compress.Encoder

	mu       sync.RWMutex
	dir      string
	filename string
	runs     []*model.DownloadRun
	onUpdate func(*model.DownloadRun) // callback for UI updates
}

// NewService creates a new download service storing images in storageDir
func NewService(storageDir string, fetcher *Fetcher, encoder compress.Encoder) *Service {
	if fetcher == nil {
		fetcher = NewFetcher(0)
	}
	if encoder == nil {
		encoder = compress.NewService(compress.DefaultQuality)
	}
	return &Service{
		fetcher:  fetcher,
		encoder:  encoder,
		dir:      storageDir,
		filename: DefaultFilename,
	}
}

// SetUpdateCallback sets the callback function for run updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadRun)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetStorage sets the directory and file name used by later runs
func (s *Service) SetStorage(dir, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dir != "" {
		s.dir = dir
	}
	if filename != "" {
		s.filename = filename
	}
}

// Storage returns the current storage directory and file name
func (s *Service) Storage() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir, s.filename
}

// OutputPath returns the path of the stored image
func (s *Service) OutputPath() string {
	dir, name := s.Storage()
	return filepath.Join(dir, name)
}

// SetJPEGQuality sets the JPEG quality for later runs
func (s *Service) SetJPEGQuality(quality int) {
	s.encoder.SetQuality(quality)
}

// SetTimeout sets the HTTP request timeout
func (s *Service) SetTimeout(timeout time.Duration) {
	s.fetcher.SetTimeout(timeout)
}

// LastRun returns a copy of the most recent run
func (s *Service) LastRun() (*model.DownloadRun, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.runs) == 0 {
		return nil, false
	}
	return s.runs[len(s.runs)-1].Clone(), true
}

// Runs returns copies of the recorded runs, oldest first
func (s *Service) Runs() []*model.DownloadRun {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]*model.DownloadRun, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run.Clone())
	}
	return runs
}

// Run fetches rawURL, decodes it and stores it as JPEG.
// A success in the fetch stage followed by a failed save is a failure;
// the decoded image is only returned when both stages succeed.
func (s *Service) Run(ctx context.Context, rawURL string) (*Result, error) {
	run := model.NewDownloadRun(generateRunID(), rawURL)
	s.addRun(run)

	s.setStatus(run, model.RunStatusFetching)
	log.Printf("Downloading image for run %s: %s", run.ID, rawURL)

	throttle := &rate.Sometimes{Interval: ProgressInterval}
	img, format, err := s.fetcher.Fetch(ctx, rawURL, func(read, total int64) {
		s.mu.Lock()
		run.BytesRead = read
		run.TotalBytes = total
		s.mu.Unlock()
		throttle.Do(func() { s.notifyUpdate(run) })
	})
	if err != nil {
		return nil, s.fail(ctx, run, err)
	}

	bounds := img.Bounds()
	s.mu.Lock()
	run.Format = format
	run.Width = bounds.Dx()
	run.Height = bounds.Dy()
	dir, filename := s.dir, s.filename
	s.mu.Unlock()

	s.setStatus(run, model.RunStatusPersisting)
	log.Printf("Saving %s image %dx%d for run %s", format, bounds.Dx(), bounds.Dy(), run.ID)

	path, size, err := s.encoder.SaveJPEG(ctx, img, dir, filename)
	if err != nil {
		return nil, s.fail(ctx, run, &PersistError{Path: filepath.Join(dir, filename), Err: err})
	}

	s.mu.Lock()
	run.OutputPath = path
	run.FileSize = size
	run.Status = model.RunStatusSucceeded
	run.FinishedAt = time.Now()
	result := &Result{Image: img, Run: run.Clone()}
	s.mu.Unlock()

	s.notifyUpdate(run)
	log.Printf("Run %s completed in %v: %s", run.ID, result.Run.Duration(), path)

	return result, nil
}

// fail records the terminal state of a failed or cancelled run
func (s *Service) fail(ctx context.Context, run *model.DownloadRun, err error) error {
	s.mu.Lock()
	if ctx.Err() != nil {
		run.Status = model.RunStatusCancelled
	} else {
		run.Status = model.RunStatusFailed
	}
	run.LastError = err.Error()
	run.FinishedAt = time.Now()
	status := run.Status
	s.mu.Unlock()

	s.notifyUpdate(run)
	if status == model.RunStatusCancelled {
		log.Printf("Run %s cancelled: %v", run.ID, ctx.Err())
	} else {
		log.Printf("Run %s failed in %s stage: %v", run.ID, StageOf(err), err)
	}
	return err
}

func (s *Service) addRun(run *model.DownloadRun) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	if len(s.runs) > MaxRunHistory {
		s.runs = append([]*model.DownloadRun(nil), s.runs[len(s.runs)-MaxRunHistory:]...)
	}
}

func (s *Service) setStatus(run *model.DownloadRun, status model.RunStatus) {
	s.mu.Lock()
	run.Status = status
	s.mu.Unlock()
	s.notifyUpdate(run)
}

// notifyUpdate calls the update callback with a snapshot of run
func (s *Service) notifyUpdate(run *model.DownloadRun) {
	s.mu.RLock()
	callback := s.onUpdate
	snapshot := run.Clone()
	s.mu.RUnlock()

	if callback != nil {
		callback(snapshot)
	}
}

// generateRunID generates a unique run ID
func generateRunID() string {
	return RunIDPrefix + uuid.NewString()
}
