package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestWindowSizeIsFixed(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if size := settings.WindowSize(); size != fyne.NewSize(400, 800) {
		t.Errorf("Expected window size 400x800, got %v", size)
	}

	// Leftover keys from older builds must not change the size
	app.Preferences().SetInt("window_width", 900)
	app.Preferences().SetInt("window_height", 1200)
	if size := settings.WindowSize(); size != fyne.NewSize(WindowWidth, WindowHeight) {
		t.Errorf("Window size should ignore stored preferences, got %v", size)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if level := settings.GetLogLevel(); level != zerolog.InfoLevel {
		t.Errorf("Expected default log level info, got %s", level)
	}

	settings.SetLogLevel("debug")
	if level := settings.GetLogLevel(); level != zerolog.DebugLevel {
		t.Errorf("Expected log level debug, got %s", level)
	}

	settings.SetLogLevel("loud")
	if level := settings.GetLogLevel(); level != zerolog.InfoLevel {
		t.Errorf("Unknown log level should fall back to info, got %s", level)
	}

	settings.SetLogLevel("")
	if raw := app.Preferences().String(KeyLogLevel); raw != DefaultLogLevel {
		t.Errorf("Empty log level should store %s, got %s", DefaultLogLevel, raw)
	}
}
