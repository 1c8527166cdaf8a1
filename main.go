package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/image-downloader/internal/compress"
	"github.com/ytget/image-downloader/internal/config"
	"github.com/ytget/image-downloader/internal/download"
	"github.com/ytget/image-downloader/internal/platform"
	"github.com/ytget/image-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.image-downloader"
	AppName = "Image Downloader"

	WindowWidth  = 480
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Image Downloader v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewScreenTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	storageDir := settings.GetStorageDirectory()
	if err := platform.CreateDirectoryIfNotExists(storageDir); err != nil {
		fmt.Printf("failed to ensure storage dir: %v\n", err)
	}

	fetcher := download.NewFetcher(settings.GetRequestTimeout())
	encoder := compress.NewService(settings.GetJPEGQuality())
	downloadSvc := download.NewService(storageDir, fetcher, encoder)

	ui.NewRootUI(myWindow, myApp, downloadSvc)

	myWindow.ShowAndRun()
}
