package main

import (
	"context"
	"io"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"partymenu/config"
	"partymenu/data"
	"partymenu/menu"
	"partymenu/tui"
	"partymenu/ui"
)

const catalogLoadTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logFile := setupLogging(cfg)
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	catalog, err := data.Load(ctx, cfg.Catalog)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	session := menu.NewSession(catalog, cfg.DefaultCategory)

	if cfg.Frontend == config.FrontendTerminal {
		if err := runTerminal(session); err != nil {
			log.Fatalf("Terminal UI failed: %v", err)
		}
		return
	}

	myApp := app.New()
	myWindow := ui.BuildUI(myApp, session)
	myWindow.ShowAndRun()
}

// setupLogging applies the configured level and output. The terminal frontend
// owns stdout/stderr, so without MENU_LOG_FILE its logs are discarded.
func setupLogging(cfg *config.Config) *os.File {
	log.SetLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("Cannot open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(f)
			return f
		}
	}
	if cfg.Frontend == config.FrontendTerminal {
		log.SetOutput(io.Discard)
	}
	return nil
}

func runTerminal(session *menu.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	tui.New(screen, session).Run()
	return nil
}
