package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flashforge/internal/model"
)

// Accent colors shared by difficulty badges and response buttons
var (
	ColorEasy   = color.RGBA{R: 76, G: 175, B: 80, A: 255}  // #4CAF50
	ColorMedium = color.RGBA{R: 255, G: 152, B: 0, A: 255}  // #FF9800
	ColorHard   = color.RGBA{R: 183, G: 28, B: 28, A: 255}  // matches ColorNameError
	ColorForge  = color.RGBA{R: 230, G: 81, B: 0, A: 255}   // primary
	ColorEmber  = color.RGBA{R: 255, G: 171, B: 64, A: 255} // morphed avatar
)

// ForgeTheme is a compact theme that ignores the system variant and always
// renders the variant chosen in the app
type ForgeTheme struct {
	variant fyne.ThemeVariant
}

// NewForgeTheme creates the theme for the dark or light variant
func NewForgeTheme(dark bool) fyne.Theme {
	if dark {
		return &ForgeTheme{variant: theme.VariantDark}
	}
	return &ForgeTheme{variant: theme.VariantLight}
}

// Color returns theme colors for the forced variant
func (t *ForgeTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return ColorEasy
	case theme.ColorNameError:
		return ColorHard
	case theme.ColorNameWarning:
		return ColorMedium
	case theme.ColorNamePrimary:
		return ColorForge
	case theme.ColorNameBackground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *ForgeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ForgeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *ForgeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameLineSpacing:
		return 3
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}

// IsDark reports whether the theme renders the dark variant
func (t *ForgeTheme) IsDark() bool {
	return t.variant == theme.VariantDark
}

// DifficultyColor returns the badge color for a difficulty
func DifficultyColor(d model.Difficulty) color.Color {
	switch d {
	case model.DifficultyEasy:
		return ColorEasy
	case model.DifficultyMedium:
		return ColorMedium
	default:
		return ColorHard
	}
}

// responseImportance returns the button importance for a response button.
// Only the marked response is highlighted.
func responseImportance(r, marked model.Response) widget.Importance {
	if r != marked {
		return widget.MediumImportance
	}
	switch r {
	case model.ResponseCorrect:
		return widget.SuccessImportance
	case model.ResponseNeedsReview:
		return widget.WarningImportance
	default:
		return widget.DangerImportance
	}
}
