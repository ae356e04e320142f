package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAnalyzeBatch_OutputDirWithCollisions(t *testing.T) {
	home := isolate(t)

	// Two CSV files with the same basename in different directories
	csv := "col1,col2\nA,1\nB,2\nC,3\n"
	writeFile(t, filepath.Join(home, "d1", "metrics.csv"), csv)
	writeFile(t, filepath.Join(home, "d2", "metrics.csv"), csv)
	outDir := filepath.Join(home, "reports")

	out := mustRun(t, "analyze-batch", filepath.Join(home, "d*", "metrics.csv"), "--output-dir", outDir, "--format", "markdown")
	if !strings.Contains(out, "[1/2] Processing metrics.csv...") || !strings.Contains(out, "[2/2] Processing metrics.csv...") {
		t.Fatalf("missing progress lines:\n%s", out)
	}

	b1 := filepath.Join(outDir, "metrics.md")
	b2 := filepath.Join(outDir, "metrics__2.md")
	for _, p := range []string{b1, b2} {
		body, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("missing report %s: %v", p, err)
		}
		if !strings.Contains(string(body), "[DATASET SUMMARY]") {
			t.Fatalf("expected markdown report in %s", p)
		}
	}
}

func TestAnalyzeBatch_StdoutQuietAndDedupe(t *testing.T) {
	home := isolate(t)
	p := writeFile(t, filepath.Join(home, "a.csv"), "x\n1\n2\n")

	out := mustRun(t, "analyze-batch", p, filepath.Join(home, "*.csv"), "--quiet")
	if strings.Contains(out, "Processing") {
		t.Fatalf("quiet run printed progress:\n%s", out)
	}
	if n := strings.Count(out, "=== EXPLORATORY ANALYSIS REPORT ==="); n != 1 {
		t.Fatalf("expected one report after de-duplication, got %d:\n%s", n, out)
	}
}

func TestAnalyzeBatch_NoMatches(t *testing.T) {
	home := isolate(t)
	if _, err := runCmd(t, "analyze-batch", filepath.Join(home, "*.csv")); err == nil {
		t.Fatal("expected error when no files match")
	}
}

func TestOutputBase(t *testing.T) {
	cases := []struct{ path, sheet, want string }{
		{"/tmp/sales.csv", "", "sales"},
		{"book.xlsx", "Q1 Data", "book__sheet-q1-data"},
		{"book.xlsx", "!!!", "book__sheet-sheet"},
	}
	for _, c := range cases {
		if got := outputBase(c.path, c.sheet); got != c.want {
			t.Fatalf("outputBase(%q, %q) = %q, want %q", c.path, c.sheet, got, c.want)
		}
	}
}

func TestParseDelimiter(t *testing.T) {
	cases := map[string]rune{"": 0, ",": ',', ";": ';', "tab": '\t', "\t": '\t', "|": '|', "PIPE": '|'}
	for in, want := range cases {
		got, err := parseDelimiter(in)
		if err != nil || got != want {
			t.Fatalf("parseDelimiter(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := parseDelimiter("#"); err == nil {
		t.Fatal("expected error for '#'")
	}
}
