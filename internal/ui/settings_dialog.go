package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	storageDirEntry *widget.Entry
	filenameEntry   *widget.Entry
	qualityEntry    *widget.Entry
	timeoutEntry    *widget.Entry
	languageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(window, settings, localization, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.storageDirEntry = widget.NewEntry()
	sd.storageDirEntry.SetPlaceHolder(sd.settings.DefaultStorageDirectory())
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	storageDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.storageDirEntry)

	sd.filenameEntry = widget.NewEntry()
	sd.filenameEntry.SetPlaceHolder(config.DefaultOutputFilename)

	sd.qualityEntry = widget.NewEntry()
	sd.qualityEntry.SetPlaceHolder("1-100")

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("0")

	languageOptions := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyStorageDirectory)+":"),
		storageDirRow,

		widget.NewLabel(text(KeyOutputFilename)+":"),
		sd.filenameEntry,

		widget.NewLabel(text(KeyJPEGQuality)+":"),
		sd.qualityEntry,

		widget.NewLabel(text(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.storageDirEntry.SetText(sd.settings.GetStorageDirectory())
	sd.filenameEntry.SetText(sd.settings.GetOutputFilename())
	sd.qualityEntry.SetText(strconv.Itoa(sd.settings.GetJPEGQuality()))
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.storageDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the entered values; unparsable numbers keep the old value
func (sd *SettingsDialog) apply() {
	sd.settings.SetStorageDirectory(sd.storageDirEntry.Text)

	if name := strings.TrimSpace(sd.filenameEntry.Text); name != "" {
		sd.settings.SetOutputFilename(name)
	}

	if quality, err := strconv.Atoi(strings.TrimSpace(sd.qualityEntry.Text)); err == nil {
		sd.settings.SetJPEGQuality(quality)
	}

	if timeout, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeout(timeout)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
