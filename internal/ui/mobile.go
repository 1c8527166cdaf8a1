package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(device fyne.Device) *MobileUI {
	return &MobileUI{device: device}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return false
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// GetPadding returns the outer screen padding
func (m *MobileUI) GetPadding() float32 {
	if m.IsMobileDevice() {
		return ScreenPadding
	}
	return ScreenPadding / 2
}

// WrapControls stacks the input controls; in landscape on mobile the entry and
// button share a row to leave room for the image.
func (m *MobileUI) WrapControls(entry, button fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() && m.IsLandscape() {
		return container.NewBorder(nil, nil, nil, button, entry)
	}
	return container.NewVBox(entry, button)
}

// PaddedContent surrounds content with the screen padding
func (m *MobileUI) PaddedContent(content fyne.CanvasObject) fyne.CanvasObject {
	p := m.GetPadding()
	return container.New(layout.NewCustomPaddedLayout(p, p, p, p), content)
}
