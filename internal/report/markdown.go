package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/eda-cli/internal/analysis"
)

// Markdown renders a compact, sectioned report suitable for docs or prompts.
// Unlike the text report it also lists describe statistics and top values.
func Markdown(res *analysis.Result, name string) (string, error) {
	if err := Validate(res); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", res.General.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n", res.General.Columns))
	b.WriteString(fmt.Sprintf("Memory: %.2f MB\n", res.General.MemoryMiB))

	nulls := make(map[string]analysis.NullStat, len(res.Nulls.Columns))
	for _, ns := range res.Nulls.Columns {
		nulls[ns.Column] = ns
	}
	if res.Types != nil && len(res.Types.ByColumn) > 0 {
		b.WriteString("\n[SCHEMA]\n")
		for _, ct := range res.Types.ByColumn {
			ns := nulls[ct.Name]
			b.WriteString(fmt.Sprintf("- %s: %s (%s, missing %.1f%%)\n", safeName(ct.Name), ct.Kind, ct.Type, ns.Percent))
		}
	}

	var withNulls []analysis.NullStat
	for _, ns := range res.Nulls.Columns {
		if ns.Count > 0 {
			withNulls = append(withNulls, ns)
		}
	}
	if len(withNulls) > 0 {
		b.WriteString("\n[NULL VALUES]\n")
		for _, ns := range withNulls {
			b.WriteString(fmt.Sprintf("- %s: %d (%.2f%%)\n", safeName(ns.Column), ns.Count, ns.Percent))
		}
	}

	b.WriteString("\n[DUPLICATES]\n")
	b.WriteString(fmt.Sprintf("- rows: %d (%.2f%%)\n", res.Duplicates.Rows, res.Duplicates.Percent))

	if res.Numeric != nil && len(res.Numeric.Columns) > 0 {
		b.WriteString("\n[NUMERIC SUMMARY]\n")
		b.WriteString("| column | count | mean | std | min | 25% | 50% | 75% | max | outliers |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
		for _, s := range res.Numeric.Columns {
			b.WriteString(fmt.Sprintf("| %s | %d | %.4g | %.4g | %.4g | %.4g | %.4g | %.4g | %.4g | %d (%.2f%%) |\n",
				safeVal(safeName(s.Column)), s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max,
				s.Outliers.Count, s.Outliers.Percent))
		}
	}

	if res.Categorical != nil && len(res.Categorical.Columns) > 0 {
		b.WriteString("\n[CATEGORICAL]\n")
		for _, s := range res.Categorical.Columns {
			b.WriteString(fmt.Sprintf("- %s: unique=%d", safeName(s.Column), s.Unique))
			if len(s.TopValues) > 0 {
				b.WriteString(" — top: ")
				for i, kv := range s.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}
func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
