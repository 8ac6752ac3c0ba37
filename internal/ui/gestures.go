package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SwipeDirection represents the outcome of a horizontal drag
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
)

// String returns the direction name used in logs
func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return "none"
	}
}

// DefaultSwipeThreshold is the horizontal travel a drag needs to count as a swipe
const DefaultSwipeThreshold float32 = 50.0

// classifySwipe turns a total drag displacement into a swipe. Drags shorter
// than threshold or mostly vertical are not swipes.
func classifySwipe(dx, dy, threshold float32) SwipeDirection {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx < threshold || absDx <= absDy {
		return SwipeNone
	}
	if dx > 0 {
		return SwipeRight
	}
	return SwipeLeft
}

// SwipeCard wraps content and reports horizontal swipes across it.
// Taps still reach the buttons inside; only drags are captured.
type SwipeCard struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	onSwipe   func(SwipeDirection)
	threshold float32

	// Accumulated drag since the last DragEnd
	dx, dy float32
}

// NewSwipeCard creates a swipeable wrapper around content
func NewSwipeCard(content fyne.CanvasObject, onSwipe func(SwipeDirection)) *SwipeCard {
	c := &SwipeCard{
		content:   content,
		onSwipe:   onSwipe,
		threshold: DefaultSwipeThreshold,
	}
	c.ExtendBaseWidget(c)
	return c
}

// Dragged accumulates drag movement
func (c *SwipeCard) Dragged(event *fyne.DragEvent) {
	c.dx += event.Dragged.DX
	c.dy += event.Dragged.DY
}

// DragEnd classifies the finished drag and reports a swipe if there was one
func (c *SwipeCard) DragEnd() {
	direction := classifySwipe(c.dx, c.dy, c.threshold)
	c.dx, c.dy = 0, 0

	if direction != SwipeNone && c.onSwipe != nil {
		c.onSwipe(direction)
	}
}

// CreateRenderer creates the widget renderer
func (c *SwipeCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content)
}
