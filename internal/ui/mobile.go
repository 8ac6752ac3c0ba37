package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI provides mobile-specific layout decisions
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsPortrait returns true if a mobile device is held upright
func (m *MobileUI) IsPortrait() bool {
	if !m.IsMobileDevice() {
		return false
	}
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}

// StatColumns returns how many stat cards fit in one row
func (m *MobileUI) StatColumns() int {
	if m.IsPortrait() {
		return MobileStatColumns
	}
	return DesktopStatColumns
}

// CreateAdaptiveContainer creates a container that adapts to mobile orientation
func (m *MobileUI) CreateAdaptiveContainer(columns int, objects ...fyne.CanvasObject) *fyne.Container {
	if m.IsPortrait() {
		return container.NewVBox(objects...)
	}
	return container.NewAdaptiveGrid(columns, objects...)
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10 // Standard padding for desktop
}
