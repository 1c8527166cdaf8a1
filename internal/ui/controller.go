package ui

import (
	"context"
	"image"
	"log"
	"strings"
	"sync"

	"github.com/ytget/image-downloader/internal/download"
)

// ErrorPrefix is prepended to every pipeline failure shown on screen
const ErrorPrefix = "Error: "

// ScreenState is a snapshot of what the screen displays
type ScreenState struct {
	URL       string
	Image     image.Image
	Error     string
	Busy      bool
	SavedPath string
}

// Controller owns the screen state and starts pipeline runs.
// At most one run is in flight; submits while busy are rejected.
type Controller struct {
	runner       download.Runner
	localization *Localization

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	state     ScreenState
	closed    bool
	listeners []func(ScreenState)
}

// NewController creates a controller with empty state
func NewController(runner download.Runner, localization *Localization) *Controller {
	if localization == nil {
		localization = NewLocalization()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		runner:       runner,
		localization: localization,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// OnChange registers a listener called after every state change
func (c *Controller) OnChange(listener func(ScreenState)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, listener)
	c.mu.Unlock()
}

// State returns the current state
func (c *Controller) State() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetURL replaces the entered URL text
func (c *Controller) SetURL(text string) {
	c.mu.Lock()
	if c.state.URL == text {
		c.mu.Unlock()
		return
	}
	c.state.URL = text
	c.commitLocked()
}

// Submit starts a run for the entered URL and reports whether one was started.
// Empty input only sets the missing-input message.
func (c *Controller) Submit() bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}

	rawURL := strings.TrimSpace(c.state.URL)
	if rawURL == "" {
		c.state.Error = c.localization.GetText(KeyPleaseEnterURL)
		c.commitLocked()
		return false
	}

	if c.state.Busy {
		c.mu.Unlock()
		log.Printf("Submit ignored, a download is already running")
		return false
	}

	c.state.Busy = true
	c.wg.Add(1)
	c.commitLocked()

	log.Printf("Submitting URL: %s", rawURL)
	go c.run(rawURL)
	return true
}

// Wait blocks until no run is in flight
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels the in-flight run and discards its result
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *Controller) run(rawURL string) {
	defer c.wg.Done()

	result, err := c.runner.Run(c.ctx, rawURL)

	c.mu.Lock()
	c.state.Busy = false
	if c.closed {
		c.mu.Unlock()
		log.Printf("Screen closed, discarding result for %s", rawURL)
		return
	}

	if err != nil {
		c.state.Image = nil
		c.state.SavedPath = ""
		c.state.Error = FormatError(err)
	} else {
		c.state.Image = result.Image
		c.state.SavedPath = result.Run.OutputPath
		c.state.Error = ""
	}
	c.commitLocked()
}

// commitLocked snapshots the state, unlocks and notifies listeners
func (c *Controller) commitLocked() {
	snapshot := c.state
	listeners := append([]func(ScreenState){}, c.listeners...)
	c.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}

// FormatError converts a pipeline error into the on-screen message
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return ErrorPrefix + err.Error()
}
