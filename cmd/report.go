package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/eda-cli/internal/report"
	"github.com/KaramelBytes/eda-cli/internal/utils"
)

var (
	repFormat     string
	repOutputPath string
)

var reportCmd = &cobra.Command{
	Use:   "report <result.json|result.yaml>",
	Short: "Render a saved JSON/YAML analysis result in another format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		format := currentConfig().OutputFormat
		if cmd.Flags().Changed("format") {
			format = repFormat
		}
		format, err := report.NormalizeFormat(format)
		if err != nil {
			return err
		}
		inFormat, err := report.NormalizeFormat(strings.TrimPrefix(filepath.Ext(path), "."))
		if err != nil {
			return fmt.Errorf("infer input format: %w", err)
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open result: %w", err)
		}
		defer f.Close()
		res, err := report.Decode(f, inFormat)
		if err != nil {
			return fmt.Errorf("load %s: %w", filepath.Base(path), err)
		}
		logger.WithField("file", filepath.Base(path)).Debugf("decoded %s result", inFormat)

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if repOutputPath == "" {
			return report.Render(cmd.OutOrStdout(), res, format, name)
		}
		var buf bytes.Buffer
		if err := report.Render(&buf, res, format, name); err != nil {
			return err
		}
		if err := utils.SafeWriteFile(repOutputPath, buf.Bytes()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote report to %s\n", repOutputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repFormat, "format", "f", "", "report format: text|markdown|json|yaml (default from config)")
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "", "optional path to write the report instead of stdout")
}
