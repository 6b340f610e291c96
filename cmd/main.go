package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/snptkdn/pomodoro/internal/logging"
	"github.com/snptkdn/pomodoro/internal/storage"
	"github.com/snptkdn/pomodoro/internal/ui/chart"
)

const appName = "pomodoro"

func main() {
	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	logger, err := logging.New(settings.LogPath)
	if err != nil {
		log.Printf("logging: %v (disabled)", err)
		logger = zap.NewNop()
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("starting", zap.String("app", appName))

	program := tea.NewProgram(chart.New(settings, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("terminal failure", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
