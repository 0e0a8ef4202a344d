// Package cli wires the cobra commands: the root command runs the
// monitor, init writes a starter config, version prints build info.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"panetop/internal/config"
	"panetop/internal/errors"
	"panetop/internal/logger"
	"panetop/internal/metrics"
	"panetop/internal/tui"
)

var (
	configFlag   string
	intervalFlag string
)

var rootCmd = &cobra.Command{
	Use:   "panetop",
	Short: "A tiny system monitor for terminal panes",
	Long: `panetop shows live CPU, memory, swap, and network gauges with a CPU
history sparkline, in an alternate-screen TUI sized to its pane.

Keys: q/esc quit, tab switches between the perf view and a clock view,
left/right cycle the clock color.

Examples:
  panetop
  panetop --interval 5s
  panetop --config ./config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(configFlag, intervalFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")
	rootCmd.Flags().StringVarP(&intervalFlag, "interval", "i", "", "refresh interval (e.g. 2s, 500ms)")
}

// Execute runs the CLI. A run that ends with an error exits non-zero; by
// the time the error prints, the terminal session has been restored.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// monitorCommand loads configuration and runs the TUI session.
func monitorCommand(configPath, interval string) error {
	log := logger.Default()

	cfg, err := config.Load(configPath, log)
	if err != nil {
		return err
	}

	if interval != "" {
		d, err := parseInterval(interval)
		if err != nil {
			return err
		}
		cfg.Interval = d
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log.Debug("starting monitor: interval=%s history=%d aggregate=%t",
		cfg.Interval, cfg.History, cfg.Network.Aggregate)

	provider := metrics.NewSystemProvider(cfg.Network.Interfaces)
	model := tui.NewModel(provider, cfg)

	return tui.NewSession().Run(model)
}

// parseInterval parses the --interval flag value.
func parseInterval(flag string) (time.Duration, error) {
	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 2s, 5s, or 500ms.")
	}
	return d, nil
}
