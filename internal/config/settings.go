package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyStorageDir     = "storage_directory"
	KeyOutputFilename = "output_filename"
	KeyJPEGQuality    = "jpeg_quality"
	KeyRequestTimeout = "request_timeout_sec"
	KeyLastURL        = "last_url"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultOutputFilename = "downloaded_image.jpg"
	DefaultJPEGQuality    = 100
	DefaultTimeoutSec     = 0
	DefaultLanguage       = "system"
	DefaultImageURL       = "https://images.unsplash.com/photo-1518791841217-8f162f1e1131?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60"

	MinJPEGQuality = 1
	MaxJPEGQuality = 100
	MaxTimeoutSec  = 600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetStorageDirectory returns the directory the downloaded image is stored in.
// It defaults to the application's private storage root.
func (s *Settings) GetStorageDirectory() string {
	dir := s.app.Preferences().String(KeyStorageDir)
	if dir != "" {
		return dir
	}
	return s.DefaultStorageDirectory()
}

// DefaultStorageDirectory resolves the private storage directory of the app
func (s *Settings) DefaultStorageDirectory() string {
	if storage := s.app.Storage(); storage != nil {
		if root := storage.RootURI(); root != nil && root.Path() != "" {
			return root.Path()
		}
	}
	return fallbackStorageDir()
}

// fallbackStorageDir is the per-user directory, or one under the temp dir
// when no user directory can be resolved
func fallbackStorageDir() string {
	dir, err := platform.GetFallbackStorageDir()
	if err != nil {
		return filepath.Join(os.TempDir(), platform.AppStorageDirName)
	}
	return dir
}

// SetStorageDirectory sets the storage directory, empty restores the default
func (s *Settings) SetStorageDirectory(dir string) {
	s.app.Preferences().SetString(KeyStorageDir, strings.TrimSpace(dir))
}

// GetOutputFilename returns the name of the stored image file
func (s *Settings) GetOutputFilename() string {
	name := s.app.Preferences().String(KeyOutputFilename)
	if name == "" {
		return DefaultOutputFilename
	}
	return name
}

// SetOutputFilename sets the stored file name; names with path separators are rejected
func (s *Settings) SetOutputFilename(name string) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) {
		name = DefaultOutputFilename
	}
	s.app.Preferences().SetString(KeyOutputFilename, name)
}

// GetJPEGQuality returns the JPEG quality used when storing the image
func (s *Settings) GetJPEGQuality() int {
	value := s.app.Preferences().IntWithFallback(KeyJPEGQuality, DefaultJPEGQuality)
	return clampQuality(value)
}

// SetJPEGQuality sets the JPEG quality
func (s *Settings) SetJPEGQuality(quality int) {
	s.app.Preferences().SetInt(KeyJPEGQuality, clampQuality(quality))
}

// GetRequestTimeout returns the HTTP timeout, 0 means none
func (s *Settings) GetRequestTimeout() time.Duration {
	sec := s.app.Preferences().IntWithFallback(KeyRequestTimeout, DefaultTimeoutSec)
	return time.Duration(clampTimeout(sec)) * time.Second
}

// SetRequestTimeout sets the HTTP timeout in whole seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, clampTimeout(seconds))
}

// GetLastURL returns the last submitted URL, or a sample image URL
func (s *Settings) GetLastURL() string {
	return s.app.Preferences().StringWithFallback(KeyLastURL, DefaultImageURL)
}

// SetLastURL remembers the submitted URL
func (s *Settings) SetLastURL(url string) {
	s.app.Preferences().SetString(KeyLastURL, url)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampQuality(quality int) int {
	if quality < MinJPEGQuality {
		return MinJPEGQuality
	}
	if quality > MaxJPEGQuality {
		return MaxJPEGQuality
	}
	return quality
}

func clampTimeout(seconds int) int {
	if seconds < 0 {
		return 0
	}
	if seconds > MaxTimeoutSec {
		return MaxTimeoutSec
	}
	return seconds
}
