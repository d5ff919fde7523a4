// funrefresh hosts a pull-to-refresh header that plays a small game
// while the list below it reloads.
//
// Usage:
//
//	funrefresh list                - List header games
//	funrefresh play <variant>      - Pull to refresh in the terminal
//	funrefresh menu                - Pick a variant interactively
//	funrefresh window <variant>    - Pull to refresh in a desktop window
//	funrefresh serve               - Start SSH server for remote play
//	funrefresh simulate <variant>  - Run a header headless and print its state
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible lanes
//	--config <path>      - Custom refresh.yaml
//	--log <path>         - Log file for terminal hosts
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/refresh-arcade/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "funrefresh",
	Short: "Pull to refresh, play while you wait",
	Long: `funrefresh shows a feed with a pull-to-refresh header. Pulling the
header far enough starts a refresh and a small game you steer by dragging
up and down until the feed has reloaded.

Available commands:
  list      - Show the header games
  play      - Run one header in the terminal
  menu      - Interactive variant picker
  window    - Run one header in a desktop window
  serve     - Start SSH server for remote play
  simulate  - Run a header headless

Examples:
  funrefresh list
  funrefresh play tank
  funrefresh menu --log /tmp/funrefresh.log --log-level debug
  funrefresh window block
  funrefresh serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom refresh.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (terminal hosts discard logs without it)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig loads refresh.yaml and applies flag overrides.
func loadConfig() (config.RefreshConfig, error) {
	cfg, err := config.LoadRefresh(flagConfig)
	if err != nil {
		return config.RefreshConfig{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

// newLogger builds the logger for a host. Terminal hosts own stdout, so
// they log to --log or nowhere; other hosts fall back to stderr.
// The returned closer must be called on exit.
func newLogger(prefix string, terminal bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogPath != "":
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w = f
		closer = func() { f.Close() } //nolint:errcheck // Best-effort close on exit
	case terminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// fail prints an error the way every command reports it and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
