package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-downloader/internal/config"
	"github.com/ytget/image-downloader/internal/download"
	"github.com/ytget/image-downloader/internal/model"
	"github.com/ytget/image-downloader/internal/platform"
)

// RootUI represents the main screen
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	urlEntry     *widget.Entry
	downloadBtn  *widget.Button
	settingsBtn  *widget.Button
	errorLabel   *widget.Label
	preview      *ImagePreview
	downloadSvc  download.Downloader
	controller   *Controller
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	notify       func(*fyne.Notification)

	// Status panel under the controls
	statusContainer *fyne.Container
	statusLabel     *widget.Label
	statusSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main screen
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(fyne.CurrentDevice()),
		notify:       app.SendNotification,
	}
	ui.controller = NewController(downloadSvc, localization)

	ui.applySettings()
	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(LoadLogoResource())

	ui.setupUI()

	// Widgets must exist before the first render
	ui.downloadSvc.SetUpdateCallback(ui.onRunUpdate)
	ui.controller.OnChange(ui.onStateChange)
	window.SetOnClosed(ui.Close)
	return ui
}

// Controller returns the screen controller
func (ui *RootUI) Controller() *Controller {
	return ui.controller
}

// Close cancels the in-flight download; its result is dropped
func (ui *RootUI) Close() {
	ui.controller.Close()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.SetText(ui.settings.GetLastURL())
	ui.urlEntry.OnChanged = ui.controller.SetURL
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.statusSpinner = widget.NewProgressBarInfinite()
	ui.statusSpinner.Hide()
	ui.statusContainer = container.NewBorder(nil, nil, nil, ui.statusSpinner, ui.statusLabel)
	ui.statusContainer.Hide()

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	ui.preview = NewImagePreview(ui.onOpenFile, ui.onCopyPath)
	ui.preview.Hide()

	entryRow := container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.urlEntry)
	top := container.NewVBox(
		ui.mobile.WrapControls(entryRow, ui.downloadBtn),
		ui.statusContainer,
		ui.errorLabel,
	)

	content := container.NewBorder(top, nil, nil, nil, ui.preview)
	ui.window.SetContent(ui.mobile.PaddedContent(content))
	ui.controller.SetURL(ui.urlEntry.Text)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
}

// applySettings pushes stored settings into the download service
func (ui *RootUI) applySettings() {
	dir := ui.settings.GetStorageDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("Failed to ensure storage dir %s: %v", dir, err)
	}

	ui.downloadSvc.SetStorage(dir, ui.settings.GetOutputFilename())
	ui.downloadSvc.SetJPEGQuality(ui.settings.GetJPEGQuality())
	ui.downloadSvc.SetTimeout(ui.settings.GetRequestTimeout())
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	ui.controller.SetURL(ui.urlEntry.Text)
	if !ui.controller.Submit() {
		return
	}
	ui.settings.SetLastURL(strings.TrimSpace(ui.urlEntry.Text))
}

// onStateChange re-renders the screen on the UI thread
func (ui *RootUI) onStateChange(state ScreenState) {
	fyne.Do(func() {
		ui.render(state)
	})
}

// render applies a controller snapshot to the widgets
func (ui *RootUI) render(state ScreenState) {
	if state.Error != "" {
		ui.errorLabel.SetText(state.Error)
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.Hide()
	}

	if state.Image != nil {
		ui.preview.SetImage(state.Image, state.SavedPath)
		ui.preview.Show()
	} else {
		ui.preview.SetImage(nil, "")
		ui.preview.Hide()
	}

	if state.Busy {
		ui.downloadBtn.Disable()
		ui.statusSpinner.Show()
	} else {
		ui.downloadBtn.Enable()
		ui.statusSpinner.Hide()
	}
}

// onRunUpdate handles run updates from the download service
func (ui *RootUI) onRunUpdate(run *model.DownloadRun) {
	var message string
	var notification *fyne.Notification
	switch run.Status {
	case model.RunStatusFetching:
		message = ui.localization.GetText(KeyDownloading)
		if p := run.Progress(); p > 0 {
			message = fmt.Sprintf(ProgressLabelFormat, message, int(p*100))
		}
	case model.RunStatusPersisting:
		message = ui.localization.GetText(KeySaving)
	case model.RunStatusSucceeded:
		message = fmt.Sprintf(SizeLabelFormat, ui.localization.GetText(KeySavedTo), run.OutputPath, run.Width, run.Height)
		notification = ui.completionNotification(run)
	}

	fyne.Do(func() {
		if notification != nil {
			ui.notify(notification)
		}
		if message == "" {
			ui.statusContainer.Hide()
			return
		}
		ui.statusLabel.SetText(message)
		ui.statusContainer.Show()
	})
}

// completionNotification builds the system notification for a stored image
func (ui *RootUI) completionNotification(run *model.DownloadRun) *fyne.Notification {
	return &fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadCompleted),
		Content: run.GetDisplayTitle(),
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.applySettings()
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
		ui.showPopUp(ui.localization.GetText(KeySettingsSaved))
	})
}

// onOpenFile opens the stored image with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	log.Printf("onOpenFile called for path: %s", filePath)

	go func() {
		if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
			log.Printf("Error opening file %s: %v", filePath, err)
			fyne.Do(func() {
				ui.showPopUp(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
			})
		}
	}()
}

// onCopyPath copies the stored image path to the clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	ui.app.Clipboard().SetContent(filePath)
	ui.showPopUp(ui.localization.GetText(KeyPathCopied))
}

// showPopUp shows a short message that hides itself
func (ui *RootUI) showPopUp(message string) {
	popUp := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
	popUp.Show()

	time.AfterFunc(PopUpAutoHide, func() {
		fyne.Do(popUp.Hide)
	})
}
