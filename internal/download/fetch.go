package download

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// HTTP constants
const (
	DefaultUserAgent = "image-downloader/1.0"
	AcceptHeader     = "image/*,*/*;q=0.8"
)

// ProgressFunc receives the number of body bytes read and the expected total (-1 if unknown)
type ProgressFunc func(read, total int64)

// Fetcher downloads an image over HTTP and decodes it
type Fetcher struct {
	mu        sync.RWMutex
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// NewFetcher creates a fetcher; a zero timeout leaves requests unbounded
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: DefaultUserAgent,
	}
}

// SetTimeout replaces the request timeout
func (f *Fetcher) SetTimeout(timeout time.Duration) {
	if timeout < 0 {
		timeout = 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.client = &http.Client{Timeout: timeout, Transport: f.client.Transport}
}

// Timeout returns the current request timeout
func (f *Fetcher) Timeout() time.Duration {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.client.Timeout
}

// SetUserAgent sets the User-Agent header, empty restores the default
func (f *Fetcher) SetUserAgent(userAgent string) {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	f.mu.Lock()
	f.userAgent = userAgent
	f.mu.Unlock()
}

// SetMaxBytes caps the response body size, 0 means unlimited
func (f *Fetcher) SetMaxBytes(maxBytes int64) {
	if maxBytes < 0 {
		maxBytes = 0
	}
	f.mu.Lock()
	f.maxBytes = maxBytes
	f.mu.Unlock()
}

// Fetch downloads rawURL and decodes the body as an image.
// It returns the image and the name of the decoder that accepted it.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, onProgress ProgressFunc) (image.Image, string, error) {
	f.mu.RLock()
	client, userAgent, maxBytes := f.client, f.userAgent, f.maxBytes
	f.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", &FetchError{URL: rawURL, Reason: ReasonRequest, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", AcceptHeader)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", &FetchError{URL: rawURL, Reason: ReasonTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &FetchError{URL: rawURL, Reason: ReasonStatus, Err: fmt.Errorf("%s", resp.Status)}
	}

	total := resp.ContentLength
	if total < 0 {
		total = -1
	}
	if maxBytes > 0 && total > maxBytes {
		return nil, "", &FetchError{URL: rawURL, Reason: ReasonTooLarge, Err: fmt.Errorf("%d bytes exceeds limit of %d", total, maxBytes)}
	}

	var body io.Reader = &progressReader{r: resp.Body, total: total, onProgress: onProgress}
	if maxBytes > 0 {
		body = io.LimitReader(body, maxBytes+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, "", &FetchError{URL: rawURL, Reason: ReasonRead, Err: err}
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, "", &FetchError{URL: rawURL, Reason: ReasonTooLarge, Err: fmt.Errorf("body exceeds limit of %d bytes", maxBytes)}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &FetchError{URL: rawURL, Reason: ReasonDecode, Err: fmt.Errorf("%w: %v", ErrUndecodable, err)}
	}
	if isNilImage(img) {
		return nil, "", &FetchError{URL: rawURL, Reason: ReasonDecode, Err: ErrUndecodable}
	}

	return img, format, nil
}

// progressReader reports cumulative bytes read
type progressReader struct {
	r          io.Reader
	read       int64
	total      int64
	onProgress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		if p.onProgress != nil {
			p.onProgress(p.read, p.total)
		}
	}
	return n, err
}
