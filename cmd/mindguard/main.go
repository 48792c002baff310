package main

import (
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mindguard/dashboard/internal/config"
	"github.com/mindguard/dashboard/internal/plot"
	"github.com/mindguard/dashboard/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.Logger = zerolog.New(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"},
	).With().Timestamp().Logger()

	// Create new Fyne app
	myApp := app.NewWithID(ui.AppID)

	settings := config.NewSettings(myApp)
	zerolog.SetGlobalLevel(settings.GetLogLevel())
	log.Info().Str("version", version).Msg("MindGuard Dashboard starting")

	shell := ui.NewShell(myApp, plot.NewService())
	if err := shell.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to build dashboard")
	}

	if err := shell.Run(); err != nil {
		log.Fatal().Err(err).Msg("failed to run dashboard")
	}
}
