package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/refresh-arcade/internal/header"
	"github.com/vovakirdan/refresh-arcade/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <variant>",
	Short: "Pull to refresh in a desktop window",
	Long: `Opens a window sized like the configured device screen, scaled by
--scale. Drag with the left mouse button to pull the header and steer
the game. Esc or Q closes the window.

Examples:
  funrefresh window tank
  funrefresh window block --scale .4`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", gui.DefaultScale, "Window pixels per screen unit")
}

func runWindow(_ *cobra.Command, args []string) {
	variant, err := header.ParseVariant(args[0])
	if err != nil {
		fail(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger("funrefresh", false)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	err = gui.Run(gui.Options{
		Variant: variant,
		Config:  cfg,
		Seed:    flagSeed,
		Scale:   flagScale,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("window failed", "error", err)
		fail(err)
	}
}
