package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyAdvanceDelay = "auto_advance_delay_ms"
	KeyDarkTheme    = "dark_theme"
)

// Default values and bounds
const (
	DefaultLanguage       = "system"
	DefaultAdvanceDelayMs = 800
	MinAdvanceDelayMs     = 200
	MaxAdvanceDelayMs     = 5000
	DefaultDarkTheme      = false
)

// Settings manages user-changeable configuration persisted in Fyne preferences.
// Values never written by the user fall back to the bootstrap configuration.
type Settings struct {
	app fyne.App

	fallbackLanguage string
	fallbackDelayMs  int
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{
		app:              app,
		fallbackLanguage: DefaultLanguage,
		fallbackDelayMs:  DefaultAdvanceDelayMs,
	}
}

// UseBootstrap makes the bootstrap configuration the fallback for values the
// user has not changed
func (s *Settings) UseBootstrap(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Language != "" {
		s.fallbackLanguage = cfg.Language
	}
	if cfg.AdvanceDelay > 0 {
		s.fallbackDelayMs = clampDelayMs(int(cfg.AdvanceDelay / time.Millisecond))
	}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return s.fallbackLanguage
	}
	return lang
}

// SetLanguage sets the application language. Unknown codes reset it to the
// system language.
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAdvanceDelayMs returns the auto-advance delay in milliseconds
func (s *Settings) GetAdvanceDelayMs() int {
	value := s.app.Preferences().Int(KeyAdvanceDelay)
	if value <= 0 {
		return s.fallbackDelayMs
	}
	return clampDelayMs(value)
}

// SetAdvanceDelayMs sets the auto-advance delay, clamped to the allowed range
func (s *Settings) SetAdvanceDelayMs(ms int) {
	s.app.Preferences().SetInt(KeyAdvanceDelay, clampDelayMs(ms))
}

// GetAdvanceDelay returns the auto-advance delay as a duration
func (s *Settings) GetAdvanceDelay() time.Duration {
	return time.Duration(s.GetAdvanceDelayMs()) * time.Millisecond
}

// GetDarkTheme returns whether the dark variant was last selected
func (s *Settings) GetDarkTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyDarkTheme, DefaultDarkTheme)
}

// SetDarkTheme remembers the selected theme variant
func (s *Settings) SetDarkTheme(dark bool) {
	s.app.Preferences().SetBool(KeyDarkTheme, dark)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampDelayMs(ms int) int {
	if ms < MinAdvanceDelayMs {
		return MinAdvanceDelayMs
	}
	if ms > MaxAdvanceDelayMs {
		return MaxAdvanceDelayMs
	}
	return ms
}
