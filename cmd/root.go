package cmd

import (
	"fmt"
	"os"

	"csvdiff/core/config"
	"csvdiff/core/failure"
	"csvdiff/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is stamped at build time with -ldflags "-X csvdiff/cmd.Version=...".
var Version = "dev"

var (
	logLevel   string
	logFormat  string
	configPath string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "csvdiff",
	Short: "Compare two key-sorted CSV files",
	Long: `csvdiff compares two delimited files, or a file and a database query,
that are sorted by the same matching key. Rows are classified as matched,
left-only or right-only, and matched rows are compared column by column.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the status of the failure kind.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}
	// Console format with development timestamps reads best in a terminal.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr == nil {
		l.Error("command failed", zap.Error(err), zap.String("kind", string(failure.KindOf(err))))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}

	os.Exit(failure.ExitCode(err))
}

// loadConfig reads .env and the environment, then applies the global flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	return cfg, nil
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config-dir", ".", "Directory holding the .env file")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: console or json")
}
