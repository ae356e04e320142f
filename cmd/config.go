package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/eda-cli/internal/config"
	"github.com/KaramelBytes/eda-cli/internal/report"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set eda configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "output_format: %s\n", c.OutputFormat)
		fmt.Fprintf(out, "top_values: %d\n", c.TopValues)
		fmt.Fprintf(out, "iqr_multiplier: %.3f\n", c.IQRMultiplier)
		if c.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %q\n", c.Delimiter)
		}
		fmt.Fprintf(out, "null_values: %q\n", c.NullValues)
		fmt.Fprintf(out, "max_rows: %d\n", c.MaxRows)
		fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "output_format":
			f, err := report.NormalizeFormat(val)
			if err != nil {
				return err
			}
			cfg.OutputFormat = f
		case "top_values":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for top_values: %v", val)
			}
			cfg.TopValues = i
		case "iqr_multiplier":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for iqr_multiplier: %v", val)
			}
			cfg.IQRMultiplier = f
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "null_values":
			parts := strings.Split(val, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			cfg.NullValues = parts
		case "max_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for max_rows: %v", val)
			}
			cfg.MaxRows = i
		case "log_level":
			lvl, err := logrus.ParseLevel(val)
			if err != nil {
				return fmt.Errorf("invalid log_level: %w", err)
			}
			cfg.LogLevel = lvl.String()
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
