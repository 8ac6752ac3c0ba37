package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/flashforge/internal/config"
	"github.com/ytget/flashforge/internal/model"
	"github.com/ytget/flashforge/internal/viewmodel"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	vm           *viewmodel.ViewModel
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	// Sections
	navRail      *navRail
	topBar       *topBar
	profile      *profileSection
	progress     *progressSection
	quickActions *quickActions
	flashcard    *flashcardSection

	// Theme currently installed on the app
	themeApplied bool
	darkApplied  bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, vm *viewmodel.ViewModel, settings *config.Settings) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		vm:           vm,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Icons only on small screens
	if ui.mobile.IsMobileDevice() && !vm.Flags().NavRailCollapsed {
		vm.ToggleNavRail()
	}

	// Set up callback for state updates
	vm.SetUpdateCallback(ui.onStateUpdate)
	window.Canvas().SetOnTypedKey(ui.onTypedKey)

	ui.refresh()
	log.Printf("RootUI initialized for session %s", vm.Study().ID())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.navRail = newNavRail(ui)
	ui.topBar = newTopBar(ui)
	ui.profile = newProfileSection(ui)
	ui.progress = newProgressSection(ui)
	ui.quickActions = newQuickActions(ui)
	ui.flashcard = newFlashcardSection(ui)

	body := container.NewVBox(
		ui.profile.container,
		ui.progress.container,
		ui.quickActions.container,
		ui.flashcard.container,
	)

	content := container.NewBorder(
		ui.topBar.container,  // top
		nil,                  // bottom
		ui.navRail.container, // left
		nil,                  // right
		container.NewVScroll(container.NewPadded(body)),
	)

	ui.window.SetContent(content)
}

// onStateUpdate is the view-model callback. It may run on a timer goroutine.
func (ui *RootUI) onStateUpdate() {
	fyne.Do(ui.refresh)
}

// refresh renders the current view-model state into every section
func (ui *RootUI) refresh() {
	flags := ui.vm.Flags()
	snap := ui.vm.Study().Snapshot()

	ui.applyTheme(flags.DarkTheme)
	ui.navRail.refresh(flags)
	ui.topBar.refresh(flags)
	ui.profile.refresh(flags)
	ui.progress.refresh(flags)
	ui.flashcard.refresh(snap)
}

// applyTheme installs the theme variant when it changed
func (ui *RootUI) applyTheme(dark bool) {
	if ui.themeApplied && ui.darkApplied == dark {
		return
	}
	ui.app.Settings().SetTheme(NewForgeTheme(dark))
	ui.themeApplied = true
	ui.darkApplied = dark
	ui.settings.SetDarkTheme(dark)
}

// onNavSelected handles a tap on a navigation rail item
func (ui *RootUI) onNavSelected(index int) {
	if err := ui.vm.SelectNav(index); err != nil {
		log.Printf("nav selection failed: %v", err)
	}
}

// onActionSelected handles a tap on a top bar action
func (ui *RootUI) onActionSelected(index int) {
	if err := ui.vm.SelectAction(index); err != nil {
		log.Printf("action selection failed: %v", err)
		return
	}
	if index == viewmodel.ActionSettings {
		ui.onShowSettings()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies saved settings to the running session and texts
func (ui *RootUI) onSettingsSaved() {
	ui.vm.Study().SetAdvanceDelay(ui.settings.GetAdvanceDelay())

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
	}
}

// onLanguageChange rebuilds the UI texts for a new language
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.refresh()
}

// onQuickAction runs a quick action and explains unavailable features
func (ui *RootUI) onQuickAction(action func() error) {
	err := action()
	if errors.Is(err, viewmodel.ErrNotImplemented) {
		dialog.ShowInformation(
			ui.localization.GetText(KeyComingSoon),
			ui.localization.GetText(KeyComingSoonDetail),
			ui.window,
		)
		return
	}
	if err != nil {
		dialog.ShowError(err, ui.window)
	}
}

// onResponse marks the learner's self-assessment
func (ui *RootUI) onResponse(r model.Response) {
	if err := ui.vm.Study().MarkResponse(r); err != nil {
		log.Printf("mark %s failed: %v", r, err)
	}
}

// onSwipe maps swipes on the card to navigation
func (ui *RootUI) onSwipe(direction SwipeDirection) {
	log.Printf("card swiped %s", direction)
	switch direction {
	case SwipeLeft:
		ui.vm.Study().Advance()
	case SwipeRight:
		ui.vm.Study().Retreat()
	}
}

// onTypedKey provides keyboard shortcuts for the study card
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	study := ui.vm.Study()
	switch event.Name {
	case fyne.KeyRight:
		study.Advance()
	case fyne.KeyLeft:
		study.Retreat()
	case fyne.KeySpace:
		study.Reveal()
	case fyne.Key1:
		ui.onResponse(model.ResponseIncorrect)
	case fyne.Key2:
		ui.onResponse(model.ResponseNeedsReview)
	case fyne.Key3:
		ui.onResponse(model.ResponseCorrect)
	}
}
