package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KaramelBytes/eda-cli/internal/analysis"
)

// Print writes the text report of res to standard output.
func Print(res *analysis.Result) error {
	return Write(os.Stdout, res)
}

// Write renders the plain-text exploratory report. Nothing is written when
// res fails validation.
func Write(w io.Writer, res *analysis.Result) error {
	if err := Validate(res); err != nil {
		return err
	}
	var b bytes.Buffer
	p := message.NewPrinter(language.English)

	b.WriteString("=== EXPLORATORY ANALYSIS REPORT ===\n\n")

	b.WriteString("GENERAL INFORMATION:\n")
	p.Fprintf(&b, "- Rows: %d\n", res.General.Rows)
	fmt.Fprintf(&b, "- Columns: %d\n", res.General.Columns)
	fmt.Fprintf(&b, "- Memory usage: %.2f MB\n\n", res.General.MemoryMiB)

	b.WriteString("NULL VALUES:\n")
	for _, ns := range res.Nulls.Columns {
		if ns.Percent > 0 {
			fmt.Fprintf(&b, "- %s: %.2f%% (%d values)\n", ns.Column, ns.Percent, ns.Count)
		}
	}

	b.WriteString("\nDUPLICATES:\n")
	fmt.Fprintf(&b, "- Duplicate rows: %d (%.2f%%)\n", res.Duplicates.Rows, res.Duplicates.Percent)

	if res.Numeric != nil {
		b.WriteString("\nOUTLIERS:\n")
		for _, s := range res.Numeric.Columns {
			if s.Outliers.Count > 0 {
				fmt.Fprintf(&b, "- %s: %d outliers (%.2f%%)\n", s.Column, s.Outliers.Count, s.Outliers.Percent)
			}
		}
	}

	if res.Categorical != nil {
		b.WriteString("\nCATEGORICAL VARIABLES:\n")
		for _, s := range res.Categorical.Columns {
			fmt.Fprintf(&b, "- %s: %d unique values\n", s.Column, s.Unique)
		}
	}

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
