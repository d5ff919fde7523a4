package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/refresh-arcade/internal/header"
	"github.com/vovakirdan/refresh-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Pull to refresh in the terminal",
	Long: `Shows a feed with a refresh header running the given game.

Controls:
  Mouse drag   - Pull the header down, steer the game while refreshing
  Down/J       - Pull (or steer down)
  Up/K         - Push (or steer up)
  Space/Enter  - Release
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  funrefresh play tank
  funrefresh play block --seed 42
  funrefresh play block --config ./my-refresh.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	variant, err := header.ParseVariant(args[0])
	if err != nil {
		fail(err)
	}

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
	err = tui.Run(tui.Options{
		Variant: variant,
		Config:  cfg,
		Seed:    flagSeed,
		Logger:  logger,
		Width:   width,
		Height:  height,
	})
	if err != nil {
		logger.Error("program failed", "error", err)
		fail(err)
	}
}

// terminalSize returns the stdout terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
