package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/eda-cli/internal/report"
	"github.com/KaramelBytes/eda-cli/internal/utils"
)

var (
	abFlags     datasetFlags
	abOutputDir string
	abQuiet     bool
)

var analyzeBatchCmd = &cobra.Command{
	Use:   "analyze-batch <files...>",
	Short: "Analyze multiple CSV/TSV/XLSX files with progress output",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := expandInputs(args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}

		popt, aopt, format, err := abFlags.resolve(cmd)
		if err != nil {
			return err
		}
		if abOutputDir != "" {
			if err := utils.EnsureDir(abOutputDir); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		total := len(files)
		for i, path := range files {
			if !abQuiet {
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			ds, res, err := analyzeFile(path, popt, aopt)
			if err != nil {
				return err
			}

			if abOutputDir == "" {
				if err := report.Render(out, res, format, ds.Name); err != nil {
					return err
				}
				fmt.Fprintln(out)
				continue
			}

			var buf bytes.Buffer
			if err := report.Render(&buf, res, format, ds.Name); err != nil {
				return err
			}
			outFile, err := utils.UniquePath(abOutputDir, outputBase(path, popt.SheetName), report.Extension(format))
			if err != nil {
				return err
			}
			if err := utils.SafeWriteFile(outFile, buf.Bytes()); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			if !abQuiet {
				fmt.Fprintf(out, "✓ Wrote analysis to %s\n", outFile)
			}
		}
		return nil
	},
}

// expandInputs resolves glob patterns, keeps literal paths that exist, drops
// duplicates and sorts the result.
func expandInputs(args []string) []string {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			// treat as literal path if exists
			if _, err := os.Stat(arg); err == nil {
				matches = []string{arg}
			}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files
}

// outputBase is the report file stem for path, with a slug of the sheet name
// appended when one was selected.
func outputBase(path, sheetName string) string {
	base := filepath.Base(path)
	safe := strings.TrimSuffix(base, filepath.Ext(base))
	if sheetName == "" {
		return safe
	}
	s := strings.ToLower(strings.TrimSpace(sheetName))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' {
			b.WriteRune('-')
		}
	}
	ss := strings.Trim(b.String(), "-")
	if ss == "" {
		ss = "sheet"
	}
	return safe + "__sheet-" + ss
}

func init() {
	rootCmd.AddCommand(analyzeBatchCmd)
	abFlags.register(analyzeBatchCmd.Flags())
	analyzeBatchCmd.Flags().StringVar(&abOutputDir, "output-dir", "", "directory to write one report per file (default: print to stdout)")
	analyzeBatchCmd.Flags().BoolVar(&abQuiet, "quiet", false, "suppress progress and non-essential output")
}
