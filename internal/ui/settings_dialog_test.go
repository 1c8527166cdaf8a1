package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/image-downloader/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	return NewSettingsDialog(window, settings, NewLocalization(), nil), settings
}

func TestSettingsDialog_SaveStoresValues(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	dir := t.TempDir()

	saved := false
	sd.onSaved = func() { saved = true }

	sd.loadCurrentSettings()
	sd.storageDirEntry.SetText(dir)
	sd.filenameEntry.SetText("cat.jpg")
	sd.qualityEntry.SetText("75")
	sd.timeoutEntry.SetText("15")
	sd.languageSelect.SetSelected("pt")

	sd.onSave(true)

	if !saved {
		t.Fatal("onSaved not called")
	}
	if got := settings.GetStorageDirectory(); got != dir {
		t.Errorf("storage dir = %q, want %q", got, dir)
	}
	if got := settings.GetOutputFilename(); got != "cat.jpg" {
		t.Errorf("filename = %q", got)
	}
	if got := settings.GetJPEGQuality(); got != 75 {
		t.Errorf("quality = %d", got)
	}
	if got := settings.GetRequestTimeout(); got != 15*time.Second {
		t.Errorf("timeout = %v", got)
	}
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("language = %q", got)
	}
}

func TestSettingsDialog_CancelKeepsValues(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.loadCurrentSettings()
	sd.qualityEntry.SetText("10")
	sd.onSave(false)

	if got := settings.GetJPEGQuality(); got != config.DefaultJPEGQuality {
		t.Errorf("quality = %d, want default", got)
	}
}

func TestSettingsDialog_InvalidNumbersKeepOldValues(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	settings.SetJPEGQuality(60)
	settings.SetRequestTimeout(20)

	sd.loadCurrentSettings()
	sd.qualityEntry.SetText("high")
	sd.timeoutEntry.SetText("")
	sd.onSave(true)

	if got := settings.GetJPEGQuality(); got != 60 {
		t.Errorf("quality = %d", got)
	}
	if got := settings.GetRequestTimeout(); got != 20*time.Second {
		t.Errorf("timeout = %v", got)
	}
}

func TestSettingsDialog_LanguageOptionsSorted(t *testing.T) {
	for i := 0; i < 5; i++ {
		sd, _ := newTestSettingsDialog(t)
		want := []string{"en", "pt", "ru", "system"}
		got := sd.languageSelect.Options
		if len(got) != len(want) {
			t.Fatalf("options = %v", got)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("options = %v, want %v", got, want)
			}
		}
	}
}
