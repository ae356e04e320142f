package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/eda-cli/internal/analysis"
	"github.com/KaramelBytes/eda-cli/internal/dataset"
	"github.com/KaramelBytes/eda-cli/internal/parser"
	"github.com/KaramelBytes/eda-cli/internal/report"
	"github.com/KaramelBytes/eda-cli/internal/utils"
)

var (
	anaFlags      datasetFlags
	anaOutputPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a CSV/TSV/XLSX file and print an exploratory report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		popt, aopt, format, err := anaFlags.resolve(cmd)
		if err != nil {
			return err
		}
		ds, res, err := analyzeFile(args[0], popt, aopt)
		if err != nil {
			return err
		}

		if anaOutputPath == "" {
			return report.Render(cmd.OutOrStdout(), res, format, ds.Name)
		}
		var buf bytes.Buffer
		if err := report.Render(&buf, res, format, ds.Name); err != nil {
			return err
		}
		if err := utils.SafeWriteFile(anaOutputPath, buf.Bytes()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote analysis to %s\n", anaOutputPath)
		return nil
	},
}

// analyzeFile loads path with the registered parsers and runs the analyzer on it.
func analyzeFile(path string, popt parser.Options, aopt analysis.Options) (*dataset.Dataset, *analysis.Result, error) {
	ds, err := parser.ParseFile(path, popt)
	if err != nil {
		return nil, nil, err
	}
	res, err := analysis.Analyze(ds, aopt)
	if err != nil {
		return nil, nil, fmt.Errorf("analyze %s: %w", ds.Name, err)
	}
	logger.WithField("file", ds.Name).Debugf("analyzed %d rows x %d columns", ds.Rows(), ds.Cols())
	return ds, res, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	anaFlags.register(analyzeCmd.Flags())
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the report instead of stdout")
}
