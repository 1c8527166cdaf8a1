package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ytget/image-downloader/internal/compress"
	"github.com/ytget/image-downloader/internal/config"
	"github.com/ytget/image-downloader/internal/download"
	"github.com/ytget/image-downloader/internal/platform"
)

var version = "dev"

// options are the command line values; zero values keep the config file setting
type options struct {
	URL        string
	ConfigPath string
	Dir        string
	Name       string
	Quality    int
	Timeout    time.Duration
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.URL == "" {
		fmt.Fprintln(stderr, "Error: -url is required")
		return 2
	}

	cfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	applyOptions(&cfg, opts)

	fallback, err := platform.GetFallbackStorageDir()
	if err != nil && cfg.StorageDir == "" {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	dir := cfg.ResolveStorageDir(fallback)

	fetcher := download.NewFetcher(cfg.Timeout)
	fetcher.SetUserAgent(cfg.UserAgent)
	fetcher.SetMaxBytes(cfg.MaxBytes)

	svc := download.NewService(dir, fetcher, compress.NewService(cfg.JPEGQuality))
	svc.SetStorage(dir, cfg.OutputFilename)

	result, err := svc.Run(ctx, opts.URL)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	r := result.Run
	fmt.Fprintf(stdout, "%s %dx%d %s (%d bytes)\n", r.OutputPath, r.Width, r.Height, r.Format, r.FileSize)
	return 0
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("image-downloader", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "image-downloader %s\n\nUsage: image-downloader -url URL [flags]\n\n", version)
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nSupported formats: %s\n", strings.Join(download.SupportedFormats(), ", "))
	}

	fs.StringVar(&opts.URL, "url", "", "image URL to download (required)")
	fs.StringVar(&opts.ConfigPath, "config", config.DefaultConfigPath, "path to TOML config file")
	fs.StringVar(&opts.Dir, "dir", "", "storage directory")
	fs.StringVar(&opts.Name, "name", "", "output file name")
	fs.IntVar(&opts.Quality, "quality", 0, "JPEG quality 1-100")
	fs.DurationVar(&opts.Timeout, "timeout", 0, "request timeout, e.g. 30s")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 && opts.URL == "" {
		opts.URL = fs.Arg(0)
	}
	return opts, nil
}

func applyOptions(cfg *config.FileConfig, opts options) {
	if opts.Dir != "" {
		cfg.StorageDir = opts.Dir
	}
	if opts.Name != "" {
		cfg.OutputFilename = opts.Name
	}
	if opts.Quality != 0 {
		cfg.JPEGQuality = opts.Quality
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
}
