package compress

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/ytget/image-downloader/internal/platform"
)

// JPEG encoding constants
const (
	MinQuality     = 1
	MaxQuality     = 100
	DefaultQuality = MaxQuality

	TempFilePattern = ".image-*.tmp"
	OutputFileMode  = 0644
)

// Service handles JPEG encoding and storage
type Service struct {
	mu      sync.RWMutex
	quality int
}

// NewService creates a new encoder with the given JPEG quality
func NewService(quality int) *Service {
	return &Service{quality: clampQuality(quality)}
}

// SetQuality sets the JPEG quality used by later saves
func (s *Service) SetQuality(quality int) {
	s.mu.Lock()
	s.quality = clampQuality(quality)
	s.mu.Unlock()
}

// Quality returns the current JPEG quality
func (s *Service) Quality() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quality
}

// SaveJPEG encodes img as JPEG and atomically replaces dir/filename
func (s *Service) SaveJPEG(ctx context.Context, img image.Image, dir, filename string) (string, int64, error) {
	if img == nil {
		return "", 0, errors.New("no image to save")
	}
	if filename == "" || filepath.Base(filename) != filename {
		return "", 0, fmt.Errorf("invalid output filename: %q", filename)
	}
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", 0, fmt.Errorf("create storage directory: %w", err)
	}

	target := filepath.Join(dir, filename)
	tmp, err := os.CreateTemp(dir, TempFilePattern)
	if err != nil {
		return "", 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := EncodeJPEG(tmp, img, s.Quality()); err != nil {
		tmp.Close()
		return "", 0, err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, OutputFileMode); err != nil {
		return "", 0, fmt.Errorf("chmod temp file: %w", err)
	}

	// A cancelled run must not replace the previous image.
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return "", 0, fmt.Errorf("replace %s: %w", target, err)
	}
	committed = true

	info, err := os.Stat(target)
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", target, err)
	}

	log.Printf("Image saved to: %s (%d bytes)", target, info.Size())
	return target, info.Size(), nil
}

// EncodeJPEG writes img to w as JPEG at the given quality
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	bw := bufio.NewWriter(w)
	if err := jpeg.Encode(bw, img, &jpeg.Options{Quality: clampQuality(quality)}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write jpeg: %w", err)
	}
	return nil
}

func clampQuality(quality int) int {
	if quality < MinQuality {
		return MinQuality
	}
	if quality > MaxQuality {
		return MaxQuality
	}
	return quality
}
