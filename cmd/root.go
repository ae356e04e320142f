package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/eda-cli/internal/config"
	edalog "github.com/KaramelBytes/eda-cli/internal/log"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
	// Per-invocation logger tagged with a run id
	logger logrus.FieldLogger = edalog.NewLogger("warn")
)

var rootCmd = &cobra.Command{
	Use:   "eda",
	Short: "EDA CLI: exploratory analysis reports for tabular datasets",
	Long: `eda profiles CSV, TSV and XLSX files: shape, declared types, missing values,
duplicate rows, numeric summaries with IQR outliers and categorical frequencies.
Reports render as plain text, Markdown, JSON or YAML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Runs before every command execution, including repeated ones in tests.
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.eda/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so analysis still runs
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	logger = edalog.NewLogger(level).WithField("run", uuid.NewString())
	logger.Debugf("config loaded (format=%s top=%d iqr_k=%.2f)", cfg.OutputFormat, cfg.TopValues, cfg.IQRMultiplier)
}

// currentConfig returns the loaded configuration or the defaults when no
// command has initialized it yet.
func currentConfig() *cfgpkg.Global {
	if cfg == nil {
		return cfgpkg.Defaults()
	}
	return cfg
}
