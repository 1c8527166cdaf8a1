package ui

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/image-downloader/internal/config"
	"github.com/ytget/image-downloader/internal/download"
	"github.com/ytget/image-downloader/internal/model"
)

// fakeDownloader is a Downloader that never touches the network
type fakeDownloader struct {
	mu       sync.Mutex
	calls    []string
	runFn    func(ctx context.Context, rawURL string) (*download.Result, error)
	onUpdate func(*model.DownloadRun)
	dir      string
	filename string
	quality  int
	timeout  time.Duration
}

func (f *fakeDownloader) Run(ctx context.Context, rawURL string) (*download.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, rawURL)
	fn := f.runFn
	f.mu.Unlock()
	return fn(ctx, rawURL)
}

func (f *fakeDownloader) SetUpdateCallback(cb func(*model.DownloadRun)) { f.onUpdate = cb }
func (f *fakeDownloader) LastRun() (*model.DownloadRun, bool) { return nil, false }
func (f *fakeDownloader) Runs() []*model.DownloadRun { return nil }
func (f *fakeDownloader) SetJPEGQuality(quality int) { f.quality = quality }
func (f *fakeDownloader) SetTimeout(timeout time.Duration) { f.timeout = timeout }

func (f *fakeDownloader) SetStorage(dir, filename string) {
	f.dir, f.filename = dir, filename
}

func (f *fakeDownloader) Storage() (string, string) {
	return f.dir, f.filename
}

func (f *fakeDownloader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func newTestRootUI(t *testing.T, svc *fakeDownloader) *RootUI {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetStorageDirectory(t.TempDir())
	settings.SetLanguage("en")

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	ui := NewRootUI(window, app, svc)
	t.Cleanup(ui.Close)
	return ui
}

func TestRootUI_EmptySubmitShowsMissingInput(t *testing.T) {
	svc := &fakeDownloader{runFn: func(context.Context, string) (*download.Result, error) {
		return nil, errors.New("unexpected call")
	}}
	ui := newTestRootUI(t, svc)

	ui.urlEntry.SetText("   ")
	test.Tap(ui.downloadBtn)

	waitFor(t, "error label", func() bool { return ui.errorLabel.Visible() })
	if ui.errorLabel.Text != "Please enter a URL" {
		t.Fatalf("error label = %q", ui.errorLabel.Text)
	}
	if svc.callCount() != 0 {
		t.Fatalf("downloader called %d times", svc.callCount())
	}
}

func TestRootUI_SuccessShowsImage(t *testing.T) {
	svc := &fakeDownloader{runFn: func(_ context.Context, rawURL string) (*download.Result, error) {
		return successResult(rawURL)
	}}
	ui := newTestRootUI(t, svc)

	const url = "https://example.com/photo.png"
	ui.urlEntry.SetText(url)
	test.Tap(ui.downloadBtn)
	ui.Controller().Wait()

	waitFor(t, "preview", func() bool { return ui.preview.Visible() })
	if ui.errorLabel.Visible() {
		t.Fatalf("error label visible: %q", ui.errorLabel.Text)
	}
	if ui.preview.SavedPath() != "/tmp/downloaded_image.jpg" {
		t.Fatalf("preview path = %q", ui.preview.SavedPath())
	}
	if got := ui.settings.GetLastURL(); got != url {
		t.Fatalf("last URL = %q", got)
	}
}

func TestRootUI_FailureShowsError(t *testing.T) {
	svc := &fakeDownloader{runFn: func(_ context.Context, rawURL string) (*download.Result, error) {
		return nil, &download.FetchError{URL: rawURL, Reason: download.ReasonTransport, Err: errors.New("connection refused")}
	}}
	ui := newTestRootUI(t, svc)

	ui.urlEntry.SetText("http://127.0.0.1:1/missing.png")
	test.Tap(ui.downloadBtn)
	ui.Controller().Wait()

	waitFor(t, "error label", func() bool { return ui.errorLabel.Visible() })
	if !strings.HasPrefix(ui.errorLabel.Text, ErrorPrefix) {
		t.Fatalf("error label = %q", ui.errorLabel.Text)
	}
	if ui.preview.Visible() {
		t.Fatal("preview visible after failure")
	}
	if ui.preview.Image() != nil {
		t.Fatal("preview kept an image after failure")
	}
}

func TestRootUI_ButtonDisabledWhileBusy(t *testing.T) {
	release := make(chan struct{})
	svc := &fakeDownloader{runFn: func(_ context.Context, rawURL string) (*download.Result, error) {
		<-release
		return successResult(rawURL)
	}}
	ui := newTestRootUI(t, svc)

	ui.urlEntry.SetText("https://example.com/slow.png")
	test.Tap(ui.downloadBtn)
	waitFor(t, "button disabled", func() bool { return ui.downloadBtn.Disabled() })

	ui.urlEntry.SetText("https://example.com/other.png")
	ui.onDownloadClick()

	close(release)
	ui.Controller().Wait()
	waitFor(t, "button enabled", func() bool { return !ui.downloadBtn.Disabled() })

	if svc.callCount() != 1 {
		t.Fatalf("downloader called %d times", svc.callCount())
	}
}

func TestRootUI_AppliesSettingsToService(t *testing.T) {
	svc := &fakeDownloader{}
	app := test.NewApp()
	defer app.Quit()

	dir := t.TempDir()
	settings := config.NewSettings(app)
	settings.SetStorageDirectory(dir)
	settings.SetOutputFilename("photo.jpg")
	settings.SetJPEGQuality(80)
	settings.SetRequestTimeout(30)

	ui := NewRootUI(test.NewWindow(nil), app, svc)
	defer ui.Close()

	if svc.dir != dir || svc.filename != "photo.jpg" {
		t.Fatalf("storage = %q %q", svc.dir, svc.filename)
	}
	if svc.quality != 80 {
		t.Fatalf("quality = %d", svc.quality)
	}
	if svc.timeout != 30*time.Second {
		t.Fatalf("timeout = %v", svc.timeout)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui := newTestRootUI(t, &fakeDownloader{})

	ui.onLanguageChange("ru")

	if ui.downloadBtn.Text != ui.localization.GetText(KeyDownload) {
		t.Fatalf("button text = %q", ui.downloadBtn.Text)
	}
	if ui.settings.GetLanguage() != "ru" {
		t.Fatalf("stored language = %q", ui.settings.GetLanguage())
	}
}

func TestRootUI_StatusFollowsRunUpdates(t *testing.T) {
	svc := &fakeDownloader{}
	ui := newTestRootUI(t, svc)

	run := model.NewDownloadRun("run-1", "https://example.com/a.png")
	run.Status = model.RunStatusFetching
	run.BytesRead, run.TotalBytes = 50, 100
	svc.onUpdate(run)
	waitFor(t, "progress status", func() bool { return ui.statusLabel.Text == "Downloading image... 50%" })

	run.Status = model.RunStatusSucceeded
	run.OutputPath = "/tmp/downloaded_image.jpg"
	run.Width, run.Height = 4, 3
	svc.onUpdate(run)
	waitFor(t, "saved status", func() bool {
		return strings.Contains(ui.statusLabel.Text, "/tmp/downloaded_image.jpg (4x3)")
	})

	run.Status = model.RunStatusFailed
	svc.onUpdate(run)
	waitFor(t, "status hidden", func() bool { return !ui.statusContainer.Visible() })
}

func TestRootUI_PrefillsLastURL(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	const url = "https://example.com/last.webp"
	settings := config.NewSettings(app)
	settings.SetStorageDirectory(t.TempDir())
	settings.SetLastURL(url)

	ui := NewRootUI(test.NewWindow(nil), app, &fakeDownloader{})
	defer ui.Close()

	if ui.urlEntry.Text != url {
		t.Fatalf("entry = %q", ui.urlEntry.Text)
	}
	if got := ui.Controller().State().URL; got != url {
		t.Fatalf("controller URL = %q", got)
	}

	ui.urlEntry.SetText("")
	test.Tap(ui.downloadBtn)
	waitFor(t, "error label", func() bool { return ui.errorLabel.Visible() })
}

func TestRootUI_CompletionNotification(t *testing.T) {
	svc := &fakeDownloader{}
	ui := newTestRootUI(t, svc)

	var mu sync.Mutex
	var sent []*fyne.Notification
	ui.notify = func(n *fyne.Notification) {
		mu.Lock()
		sent = append(sent, n)
		mu.Unlock()
	}

	run := model.NewDownloadRun("run-1", "https://example.com/photos/cat%20one.png")
	run.Status = model.RunStatusPersisting
	svc.onUpdate(run)

	run.Status = model.RunStatusSucceeded
	svc.onUpdate(run)

	waitFor(t, "notification", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(sent) == 1
	})
	mu.Lock()
	defer mu.Unlock()
	if sent[0].Title != "Download completed" {
		t.Fatalf("title = %q", sent[0].Title)
	}
	if sent[0].Content != run.GetDisplayTitle() {
		t.Fatalf("content = %q", sent[0].Content)
	}
}

func TestImagePreview_TapsNeedSavedPath(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var tapped, secondary []string
	p := NewImagePreview(
		func(path string) { tapped = append(tapped, path) },
		func(path string) { secondary = append(secondary, path) },
	)

	test.Tap(p)
	if len(tapped) != 0 {
		t.Fatal("tap fired without an image")
	}

	p.SetImage(image.NewRGBA(image.Rect(0, 0, 2, 2)), "/tmp/x.jpg")
	test.Tap(p)
	test.TapSecondary(p)
	if len(tapped) != 1 || tapped[0] != "/tmp/x.jpg" {
		t.Fatalf("tapped = %v", tapped)
	}
	if len(secondary) != 1 {
		t.Fatalf("secondary = %v", secondary)
	}
}
