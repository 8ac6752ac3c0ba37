package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float32
		expected SwipeDirection
	}{
		{"left", -120, 10, SwipeLeft},
		{"right", 120, -10, SwipeRight},
		{"exactly threshold", DefaultSwipeThreshold, 0, SwipeRight},
		{"too short", -30, 0, SwipeNone},
		{"vertical", 60, 200, SwipeNone},
		{"diagonal tie", 80, 80, SwipeNone},
		{"no movement", 0, 0, SwipeNone},
	}

	for _, test := range tests {
		result := classifySwipe(test.dx, test.dy, DefaultSwipeThreshold)
		if result != test.expected {
			t.Errorf("%s: classifySwipe(%v, %v) = %s, expected %s", test.name, test.dx, test.dy, result, test.expected)
		}
	}
}

func TestSwipeCard_AccumulatesDrag(t *testing.T) {
	var swipes []SwipeDirection
	card := NewSwipeCard(widget.NewLabel("card"), func(d SwipeDirection) {
		swipes = append(swipes, d)
	})

	// Several small moves add up to one swipe
	for i := 0; i < 4; i++ {
		card.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: -20, DY: 2}})
	}
	card.DragEnd()

	// A short drag after the reset is not a swipe
	card.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 30}})
	card.DragEnd()

	if len(swipes) != 1 || swipes[0] != SwipeLeft {
		t.Errorf("swipes = %v, expected [left]", swipes)
	}
}

func TestTapArea(t *testing.T) {
	taps := 0
	area := NewTapArea(widget.NewLabel("avatar"), func() { taps++ })

	area.Tapped(&fyne.PointEvent{})
	area.Tapped(&fyne.PointEvent{})
	if taps != 2 {
		t.Errorf("taps = %d, expected 2", taps)
	}

	// nil callback must not panic
	NewTapArea(widget.NewLabel("idle"), nil).Tapped(&fyne.PointEvent{})
}
