// Package main provides the codebreaker binary: an interactive
// terminal code-breaking game against a random secret code.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/codebreaker/internal/config"
	"github.com/cory-johannsen/codebreaker/internal/game"
	"github.com/cory-johannsen/codebreaker/internal/observability"
	"github.com/cory-johannsen/codebreaker/internal/render"
	"github.com/cory-johannsen/codebreaker/internal/term"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	themePath := flag.String("theme", "", "path to a YAML peg theme file")
	lineMode := flag.Bool("line-mode", false, "force whole-line input")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *lineMode {
		cfg.Input.Mode = config.ModeLine
	}
	if *themePath != "" {
		cfg.Render.Theme = *themePath
	}

	device := term.Stdin()
	wantRaw := cfg.Input.Mode != config.ModeLine

	logger, err := buildLogger(cfg, wantRaw && device.Interactive())
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	theme := render.DefaultTheme()
	if cfg.Render.Theme != "" {
		theme, err = render.LoadThemeFromFile(cfg.Render.Theme)
		if err != nil {
			logger.Fatal("loading theme", zap.Error(err))
		}
	}

	// Raw-mode acquisition failure is not fatal: the game degrades to
	// whole-line input.
	guardian := term.NewGuardian(device, logger)
	release := func() {}
	raw := false
	if wantRaw {
		handle, err := guardian.Acquire()
		switch {
		case err == nil:
			raw = true
			release = handle.Release
			defer handle.Release()
		case errors.Is(err, term.ErrNotInteractive):
			logger.Info("stdin is not a terminal, using line input")
		default:
			logger.Warn("raw mode unavailable, using line input", zap.Error(err))
		}
	}

	listener := term.NewInterruptListener(release, logger)
	listener.Start()
	defer listener.Stop()

	renderer := render.NewRenderer(os.Stdout, theme, cfg.Render.Color, raw)

	var events <-chan game.Event
	if raw {
		events = term.ReadKeys(os.Stdin)
	} else {
		events = term.ReadLines(os.Stdin, renderer.Reprompt)
	}

	renderer.Intro()
	if raw && !waitForContinue(events, listener.Abort()) {
		return
	}

	secret := game.NewGenerator(game.NewCryptoSource()).Generate()
	loop := game.NewLoop(secret, events, listener.Abort(), renderer, logger)
	loop.Play()

	// Win, Lost, and abort all exit with success status.
	release()
}

// buildLogger returns a logger from config. During raw interactive
// play with no log file configured, logging is disabled entirely so
// log lines cannot corrupt the board.
func buildLogger(cfg config.Config, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.Logging.File == "" {
		return zap.NewNop(), nil
	}
	return observability.NewLogger(cfg.Logging)
}

// waitForContinue blocks for the startup "press any key" event.
// Returns false if the player aborted or input ended first.
func waitForContinue(events <-chan game.Event, abort <-chan struct{}) bool {
	select {
	case <-abort:
		return false
	case ev, ok := <-events:
		return ok && ev.Kind != game.EventAbort
	}
}
