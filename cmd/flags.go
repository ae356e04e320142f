package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KaramelBytes/eda-cli/internal/analysis"
	"github.com/KaramelBytes/eda-cli/internal/parser"
	"github.com/KaramelBytes/eda-cli/internal/report"
)

// datasetFlags are the loading and analysis flags shared by analyze and analyze-batch.
type datasetFlags struct {
	format     string
	delimiter  string
	nullValues []string
	maxRows    int
	sheetName  string
	sheetIndex int
	top        int
	iqrK       float64
}

func (f *datasetFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.format, "format", "f", "", "report format: text|markdown|json|yaml (default from config)")
	fs.StringVar(&f.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | '|' | 'tab'")
	fs.StringSliceVar(&f.nullValues, "null-values", nil, "cell texts read as missing (comma-separated, repeatable)")
	fs.IntVar(&f.maxRows, "max-rows", 0, "maximum rows to process (0 = unlimited)")
	fs.StringVar(&f.sheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	fs.IntVar(&f.sheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	fs.IntVar(&f.top, "top", 0, "number of top values per categorical column (default from config)")
	fs.Float64Var(&f.iqrK, "iqr-k", 0, "IQR multiplier for outlier fences (default from config)")
}

// resolve merges changed flags over the loaded configuration.
func (f *datasetFlags) resolve(cmd *cobra.Command) (parser.Options, analysis.Options, string, error) {
	c := currentConfig()
	changed := cmd.Flags().Changed

	format := c.OutputFormat
	if changed("format") {
		format = f.format
	}
	format, err := report.NormalizeFormat(format)
	if err != nil {
		return parser.Options{}, analysis.Options{}, "", err
	}

	popt := parser.DefaultOptions()
	popt.Log = logger
	delim := c.Delimiter
	if changed("delimiter") {
		delim = f.delimiter
	}
	if popt.Delimiter, err = parseDelimiter(delim); err != nil {
		return parser.Options{}, analysis.Options{}, "", err
	}
	if changed("null-values") {
		popt.NullValues = f.nullValues
	} else if len(c.NullValues) > 0 {
		popt.NullValues = c.NullValues
	}
	popt.MaxRows = c.MaxRows
	if changed("max-rows") {
		popt.MaxRows = f.maxRows
	}
	if popt.MaxRows < 0 {
		return parser.Options{}, analysis.Options{}, "", fmt.Errorf("invalid --max-rows: %d", popt.MaxRows)
	}
	popt.SheetName = f.sheetName
	popt.SheetIndex = f.sheetIndex

	aopt := analysis.DefaultOptions()
	if c.TopValues > 0 {
		aopt.TopValues = c.TopValues
	}
	if c.IQRMultiplier > 0 {
		aopt.IQRMultiplier = c.IQRMultiplier
	}
	if changed("top") {
		if f.top <= 0 {
			return parser.Options{}, analysis.Options{}, "", fmt.Errorf("invalid --top: %d (must be > 0)", f.top)
		}
		aopt.TopValues = f.top
	}
	if changed("iqr-k") {
		if f.iqrK <= 0 {
			return parser.Options{}, analysis.Options{}, "", fmt.Errorf("invalid --iqr-k: %v (must be > 0)", f.iqrK)
		}
		aopt.IQRMultiplier = f.iqrK
	}
	return popt, aopt, format, nil
}

func parseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %s (use ',' | ';' | '|' | 'tab')", s)
	}
}
