package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/rs/zerolog/log"

	"github.com/mindguard/dashboard/internal/config"
	"github.com/mindguard/dashboard/internal/plot"
)

var (
	// ErrNotStarted is returned by Run before a successful Start
	ErrNotStarted = errors.New("shell: not started")

	// ErrClosed is returned by Start and Run once the shell has been closed
	ErrClosed = errors.New("shell: closed")
)

// Shell is the application context: it owns the top-level window, the scroll
// container and the dashboard view. Create it with NewShell, populate it with
// Start and release it with Close.
type Shell struct {
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	renderer     plot.Renderer
	hover        *HoverTable

	window fyne.Window
	scroll *container.Scroll
	view   *DashboardView
	closed bool
}

// NewShell creates the application context for app
func NewShell(app fyne.App, renderer plot.Renderer) *Shell {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	return &Shell{
		app:          app,
		settings:     settings,
		localization: localization,
		renderer:     renderer,
		hover:        NewHoverTable(),
	}
}

// Start creates the window and builds the dashboard inside a vertical scroll
// region. The screen is built once.
func (s *Shell) Start() error {
	if s.closed {
		return ErrClosed
	}
	if s.window != nil {
		return nil
	}

	s.app.Settings().SetTheme(NewDashboardTheme())

	window := s.app.NewWindow(AppTitle)

	view := NewDashboardView(s.localization, s.renderer, DefaultHoverPalette(), s.hover)
	content, err := view.Build()
	if err != nil {
		window.Close()
		return fmt.Errorf("build dashboard: %w", err)
	}

	s.scroll = container.NewVScroll(content)
	window.SetContent(s.scroll)
	window.Resize(s.settings.WindowSize())
	window.SetCloseIntercept(func() {
		s.Close()
	})

	s.window = window
	s.view = view
	log.Info().Str("language", s.localization.GetCurrentLanguage()).Msg("dashboard started")
	return nil
}

// Run shows the window and blocks in the event loop until it is closed
func (s *Shell) Run() error {
	if s.closed {
		return ErrClosed
	}
	if s.window == nil {
		return ErrNotStarted
	}
	s.window.ShowAndRun()
	return nil
}

// Close closes the window. It is safe to call more than once and before
// Start; a closed shell cannot be started again.
func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.window == nil {
		return
	}

	s.window.Close()
	log.Info().Msg("dashboard closed")
}
