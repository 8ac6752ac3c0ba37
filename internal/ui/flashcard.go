package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flashforge/internal/model"
	"github.com/ytget/flashforge/internal/session"
)

// Text keys of the response buttons
var responseKeys = map[model.Response]string{
	model.ResponseIncorrect:   KeyIncorrect,
	model.ResponseNeedsReview: KeyReview,
	model.ResponseCorrect:     KeyCorrect,
}

var responseIcons = map[model.Response]func() fyne.Resource{
	model.ResponseIncorrect:   theme.CancelIcon,
	model.ResponseNeedsReview: theme.ViewRefreshIcon,
	model.ResponseCorrect:     theme.ConfirmIcon,
}

func difficultyKey(d model.Difficulty) string {
	switch d {
	case model.DifficultyEasy:
		return KeyEasy
	case model.DifficultyMedium:
		return KeyMedium
	default:
		return KeyHard
	}
}

// withAlpha returns c with the given alpha, used for tinted badge backgrounds
func withAlpha(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}

// flashcardSection renders the study card and its controls
type flashcardSection struct {
	ui *RootUI

	badgeBg   *canvas.Rectangle
	badgeText *canvas.Text
	counter   *widget.Label
	prompt    *widget.Label
	answer    *widget.Label

	prevBtn   *widget.Button
	revealBtn *widget.Button
	nextBtn   *widget.Button

	responseButtons map[model.Response]*widget.Button
	responseRow     *fyne.Container
	answerBox       *fyne.Container

	card      *SwipeCard
	container *fyne.Container
}

func newFlashcardSection(ui *RootUI) *flashcardSection {
	f := &flashcardSection{
		ui:              ui,
		responseButtons: make(map[model.Response]*widget.Button),
	}
	loc := ui.localization
	study := ui.vm.Study()

	f.badgeBg = canvas.NewRectangle(color.Transparent)
	f.badgeBg.CornerRadius = BadgeCornerRadius
	f.badgeText = canvas.NewText("", ColorMedium)
	f.badgeText.TextStyle = fyne.TextStyle{Bold: true}
	badge := container.NewStack(f.badgeBg, container.NewPadded(f.badgeText))

	f.counter = widget.NewLabel("")
	f.counter.Alignment = fyne.TextAlignTrailing

	f.prompt = widget.NewLabel("")
	f.prompt.TextStyle = fyne.TextStyle{Bold: true}
	f.prompt.SizeName = theme.SizeNameSubHeadingText
	f.prompt.Wrapping = fyne.TextWrapWord

	f.answer = widget.NewLabel("")
	f.answer.Wrapping = fyne.TextWrapWord
	f.answerBox = container.NewVBox(widget.NewSeparator(), f.answer)

	f.prevBtn = widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), study.Retreat)
	f.prevBtn.Importance = widget.MediumImportance
	f.revealBtn = widget.NewButtonWithIcon(loc.GetText(KeyRevealAnswer), theme.VisibilityIcon(), study.Reveal)
	f.revealBtn.Importance = widget.HighImportance
	f.nextBtn = widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), study.Advance)
	f.nextBtn.Importance = widget.MediumImportance

	f.responseRow = container.NewGridWithColumns(len(model.Responses()))
	for _, r := range model.Responses() {
		response := r // Capture for closure
		btn := widget.NewButtonWithIcon(loc.GetText(responseKeys[r]), responseIcons[r](), func() {
			ui.onResponse(response)
		})
		f.responseButtons[r] = btn
		f.responseRow.Add(btn)
	}

	controls := container.NewHBox(layout.NewSpacer(), f.prevBtn, f.revealBtn, f.nextBtn, layout.NewSpacer())

	body := container.NewVBox(
		container.NewBorder(nil, nil, badge, f.counter),
		f.prompt,
		f.answerBox,
		controls,
		f.responseRow,
	)

	background := canvas.NewRectangle(withAlpha(ColorForge, 18))
	background.CornerRadius = CardCornerRadius
	background.SetMinSize(fyne.NewSize(0, CardMinHeight))

	f.card = NewSwipeCard(container.NewStack(background, container.NewPadded(body)), ui.onSwipe)
	f.container = container.NewVBox(f.card)
	return f
}

func (f *flashcardSection) refresh(snap session.Snapshot) {
	loc := f.ui.localization
	card := snap.Card

	f.badgeText.Text = loc.GetText(difficultyKey(card.Difficulty))
	f.badgeText.Color = DifficultyColor(card.Difficulty)
	f.badgeBg.FillColor = withAlpha(DifficultyColor(card.Difficulty), 48)
	f.badgeText.Refresh()
	f.badgeBg.Refresh()

	f.counter.SetText(card.CounterText())
	f.prompt.SetText(card.Prompt)
	f.answer.SetText(card.Answer)

	if snap.Revealed {
		f.answerBox.Show()
		f.responseRow.Show()
		f.revealBtn.SetText(loc.GetText(KeyHideAnswer))
		f.revealBtn.SetIcon(theme.VisibilityOffIcon())
	} else {
		f.answerBox.Hide()
		f.responseRow.Hide()
		f.revealBtn.SetText(loc.GetText(KeyRevealAnswer))
		f.revealBtn.SetIcon(theme.VisibilityIcon())
	}

	for r, btn := range f.responseButtons {
		btn.Importance = responseImportance(r, snap.Marked)
		btn.Refresh()
	}
}
