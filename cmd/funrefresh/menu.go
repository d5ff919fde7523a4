package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/refresh-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a header game interactively",
	Long: `Opens the variant picker. Selecting a game shows the feed with that
header; Esc returns to the picker.

Controls:
  Up/Down     - Navigate
  Enter       - Select
  Esc         - Back to picker (from a header)
  Q/Ctrl+C    - Quit`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger("funrefresh", true)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	width, height := terminalSize()
	if err := tui.RunApp(cfg, flagSeed, logger, width, height); err != nil {
		logger.Error("program failed", "error", err)
		fail(err)
	}
}
