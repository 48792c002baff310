package config

import (
	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage = "app_language"
	KeyLogLevel = "log_level"
)

// Default values
const (
	DefaultLanguage = "system"
	DefaultLogLevel = "info"
)

// The window always opens at this size; it is not a stored preference.
const (
	WindowWidth  = 400
	WindowHeight = 800
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// WindowSize returns the fixed initial window size
func (s *Settings) WindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level, falling back to info for
// values zerolog does not recognize
func (s *Settings) GetLogLevel() zerolog.Level {
	raw := s.app.Preferences().String(KeyLogLevel)
	if raw == "" {
		s.SetLogLevel(DefaultLogLevel)
		raw = DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// SetLogLevel sets the log level name (trace, debug, info, warn, error)
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}
