package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "image-downloader.png"
)

// LoadLogoResource loads the logo from file path, falling back to the theme's image icon
func LoadLogoResource() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.FileImageIcon()
	}
	return res
}
