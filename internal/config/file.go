package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultConfigPath is read by the headless command when no -config is given
const DefaultConfigPath = "~/.config/image-downloader/config.toml"

// FileConfig holds the headless command settings.
type FileConfig struct {
	StorageDir     string
	OutputFilename string
	JPEGQuality    int
	Timeout        time.Duration
	UserAgent      string
	MaxBytes       int64
}

// DefaultFileConfig returns the values used when the config file is missing
func DefaultFileConfig() FileConfig {
	return FileConfig{
		OutputFilename: DefaultOutputFilename,
		JPEGQuality:    DefaultJPEGQuality,
	}
}

// LoadFile parses a TOML config, falling back to defaults when it is missing.
func LoadFile(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()

	if strings.TrimSpace(path) == "" {
		path = DefaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return FileConfig{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return FileConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		StorageDir     string `toml:"storage_dir"`
		OutputFilename string `toml:"output_filename"`
		JPEGQuality    int    `toml:"jpeg_quality"`
		Timeout        string `toml:"timeout"`
		UserAgent      string `toml:"user_agent"`
		MaxBytes       int64  `toml:"max_bytes"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return FileConfig{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.StorageDir); dir != "" {
		cfg.StorageDir, err = expandPath(dir)
		if err != nil {
			return FileConfig{}, fmt.Errorf("storage_dir: %w", err)
		}
	}

	if name := strings.TrimSpace(raw.OutputFilename); name != "" {
		if strings.ContainsAny(name, `/\`) {
			return FileConfig{}, fmt.Errorf("output_filename must be a plain file name: %q", name)
		}
		cfg.OutputFilename = name
	}

	if raw.JPEGQuality != 0 {
		cfg.JPEGQuality = clampQuality(raw.JPEGQuality)
	}

	if timeout := strings.TrimSpace(raw.Timeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return FileConfig{}, fmt.Errorf("timeout: %w", err)
		}
		if d < 0 {
			d = 0
		}
		cfg.Timeout = d
	}

	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)
	if raw.MaxBytes > 0 {
		cfg.MaxBytes = raw.MaxBytes
	}

	return cfg, nil
}

// ResolveStorageDir returns StorageDir or the per-user fallback
func (c FileConfig) ResolveStorageDir(fallback string) string {
	if strings.TrimSpace(c.StorageDir) != "" {
		return c.StorageDir
	}
	return fallback
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
