package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIconName = "flashforge.svg"
)

//go:embed assets/flashforge.svg
var appIconSVG []byte

// AppIconResource is the embedded application icon
var AppIconResource fyne.Resource = fyne.NewStaticResource(AppIconName, appIconSVG)
