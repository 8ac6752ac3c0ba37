package ui

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flashforge/internal/config"
)

// languageOrder fixes the order of the language picker
var languageOrder = []string{"system", "en", "ru", "pt"}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	delayEntry     *widget.Entry
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written to settings.
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and displays the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(window, settings, localization, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	labels := sd.settings.GetLanguageOptions()
	options := make([]string, 0, len(languageOrder))
	for _, code := range languageOrder {
		options = append(options, labels[code])
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	sd.delayEntry = widget.NewEntry()
	sd.delayEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinAdvanceDelayMs, config.MaxAdvanceDelayMs))
	sd.delayEntry.Validator = sd.validateDelay

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyAdvanceDelay)+":"),
		sd.delayEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.delayEntry.SetText(strconv.Itoa(sd.settings.GetAdvanceDelayMs()))
}

// selectedLanguage maps the selected display name back to its code
func (sd *SettingsDialog) selectedLanguage() string {
	for code, label := range sd.settings.GetLanguageOptions() {
		if label == sd.languageSelect.Selected {
			return code
		}
	}
	return ""
}

func (sd *SettingsDialog) validateDelay(text string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(text)); err != nil {
		return errors.New(sd.localization.GetText(KeyInvalidDelay))
	}
	return nil
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	delayText := strings.TrimSpace(sd.delayEntry.Text)
	if delayText != "" {
		if err := sd.validateDelay(delayText); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		delay, _ := strconv.Atoi(delayText)
		sd.settings.SetAdvanceDelayMs(delay)
	}

	if lang := sd.selectedLanguage(); lang != "" {
		sd.settings.SetLanguage(lang)
	}

	log.Printf("settings saved: language=%s advance_delay=%dms",
		sd.settings.GetLanguage(), sd.settings.GetAdvanceDelayMs())

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
