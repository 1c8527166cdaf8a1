package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ImagePreview shows the downloaded image.
// Tap opens the stored file, secondary tap (long press on mobile) copies its path.
type ImagePreview struct {
	widget.BaseWidget

	image     *canvas.Image
	savedPath string

	onTap          func(path string)
	onSecondaryTap func(path string)
}

var (
	_ fyne.Tappable          = (*ImagePreview)(nil)
	_ fyne.SecondaryTappable = (*ImagePreview)(nil)
)

// NewImagePreview creates an empty preview
func NewImagePreview(onTap, onSecondaryTap func(path string)) *ImagePreview {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinH))

	p := &ImagePreview{
		image:          img,
		onTap:          onTap,
		onSecondaryTap: onSecondaryTap,
	}
	p.ExtendBaseWidget(p)
	return p
}

// SetImage replaces the displayed image and the path it was stored at
func (p *ImagePreview) SetImage(img image.Image, savedPath string) {
	p.image.Image = img
	p.savedPath = savedPath
	p.image.Refresh()
}

// Image returns the displayed image
func (p *ImagePreview) Image() image.Image {
	return p.image.Image
}

// SavedPath returns the path of the stored file
func (p *ImagePreview) SavedPath() string {
	return p.savedPath
}

// Tapped handles primary taps
func (p *ImagePreview) Tapped(*fyne.PointEvent) {
	if p.onTap != nil && p.savedPath != "" {
		p.onTap(p.savedPath)
	}
}

// TappedSecondary handles secondary taps and long presses
func (p *ImagePreview) TappedSecondary(*fyne.PointEvent) {
	if p.onSecondaryTap != nil && p.savedPath != "" {
		p.onSecondaryTap(p.savedPath)
	}
}

// CreateRenderer implements fyne.Widget
func (p *ImagePreview) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.image)
}
