package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// TapArea makes arbitrary content tappable, on touch screens and with a mouse
type TapArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	onTap   func()
}

// NewTapArea creates a tappable wrapper around content
func NewTapArea(content fyne.CanvasObject, onTap func()) *TapArea {
	t := &TapArea{content: content, onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

// Tapped handles tap and click events
func (t *TapArea) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

// Cursor shows a pointer on desktop to hint that the area is interactive
func (t *TapArea) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (t *TapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}
