package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/eda-cli/internal/analysis"
	"github.com/KaramelBytes/eda-cli/internal/dataset"
	"github.com/KaramelBytes/eda-cli/internal/report"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		General: &analysis.GeneralInfo{Rows: 12345, Columns: 3, MemoryMiB: 0.28, ColumnNames: []string{"price", "city", "qty"}},
		Types: &analysis.TypeInfo{
			Counts: map[string]int{"float": 1, "string": 1, "int": 1},
			ByColumn: []analysis.ColumnType{
				{Name: "price", Type: "float", Kind: dataset.Numeric},
				{Name: "city", Type: "string", Kind: dataset.Categorical},
				{Name: "qty", Type: "int", Kind: dataset.Numeric},
			},
		},
		Nulls: &analysis.NullInfo{Columns: []analysis.NullStat{
			{Column: "price", Count: 0, Percent: 0},
			{Column: "city", Count: 1234, Percent: 9.996},
			{Column: "qty", Count: 0, Percent: 0},
		}},
		Duplicates: &analysis.DuplicateInfo{},
		Numeric: &analysis.NumericSummary{Columns: []analysis.NumericStat{
			{Column: "price", Count: 12345, Outliers: analysis.OutlierStat{Count: 17, Percent: 0.1377}},
			{Column: "qty", Count: 12345},
		}},
		Categorical: &analysis.CategoricalSummary{Columns: []analysis.CategoricalStat{
			{Column: "city", Unique: 42, TopValues: []analysis.CategoryCount{{Value: "Lima", Count: 900}}},
		}},
	}
}

func TestWriteExactLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleResult()))

	want := strings.Join([]string{
		"=== EXPLORATORY ANALYSIS REPORT ===",
		"",
		"GENERAL INFORMATION:",
		"- Rows: 12,345",
		"- Columns: 3",
		"- Memory usage: 0.28 MB",
		"",
		"NULL VALUES:",
		"- city: 10.00% (1234 values)",
		"",
		"DUPLICATES:",
		"- Duplicate rows: 0 (0.00%)",
		"",
		"OUTLIERS:",
		"- price: 17 outliers (0.14%)",
		"",
		"CATEGORICAL VARIABLES:",
		"- city: 42 unique values",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteFiltersZeroRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleResult()))
	out := buf.String()

	assert.NotContains(t, out, "- price: 0.00%")
	assert.NotContains(t, out, "- qty:")
	assert.NotContains(t, out, "Lima", "top values are not part of the text report")
}

func TestWriteOmitsAbsentSections(t *testing.T) {
	res := sampleResult()
	res.Numeric = nil
	res.Categorical = nil
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res))
	out := buf.String()

	assert.NotContains(t, out, "OUTLIERS:")
	assert.NotContains(t, out, "CATEGORICAL VARIABLES:")
	assert.Contains(t, out, "- Duplicate rows: 0 (0.00%)")
}

func TestWriteRejectsMalformedResult(t *testing.T) {
	cases := map[string]func(*analysis.Result){
		"general":     func(r *analysis.Result) { r.General = nil },
		"nulls":       func(r *analysis.Result) { r.Nulls = nil },
		"duplicates":  func(r *analysis.Result) { r.Duplicates = nil },
		"numeric":     func(r *analysis.Result) { r.Numeric.Columns[0].Column = "ghost" },
		"categorical": func(r *analysis.Result) { r.Categorical.Columns[0].Column = "ghost" },
	}
	for section, mutate := range cases {
		t.Run(section, func(t *testing.T) {
			res := sampleResult()
			mutate(res)
			var buf bytes.Buffer
			err := report.Write(&buf, res)
			var mre *report.MalformedResultError
			require.True(t, errors.As(err, &mre), "err = %v", err)
			assert.Equal(t, section, mre.Section)
			assert.Zero(t, buf.Len(), "nothing may be written for a malformed result")
		})
	}

	var mre *report.MalformedResultError
	assert.True(t, errors.As(report.Write(&bytes.Buffer{}, nil), &mre))
}

func TestWriteFromAnalyze(t *testing.T) {
	ds, err := dataset.New("letters",
		series.New([]float64{1, 2, 3, 4, 5, 100}, series.Float, "x"),
		series.New([]string{"a", "a", "b", "b", "b", "NaN"}, series.String, "letter"),
	)
	require.NoError(t, err)
	res, err := analysis.Analyze(ds, analysis.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "- Rows: 6\n")
	assert.Contains(t, out, "- letter: 16.67% (1 values)\n")
	assert.Contains(t, out, "- x: 1 outliers (16.67%)\n")
	assert.Contains(t, out, "- letter: 2 unique values\n")
	assert.NotContains(t, out, "- x: 0.00%")
}

func TestMarkdownSections(t *testing.T) {
	md, err := report.Markdown(sampleResult(), "sales.csv")
	require.NoError(t, err)
	for _, s := range []string{
		"[DATASET SUMMARY]", "File: sales.csv", "Rows: 12345",
		"[SCHEMA]", "- city: categorical (string, missing 10.0%)",
		"[NULL VALUES]", "[DUPLICATES]", "[NUMERIC SUMMARY]", "| price | 12345 |",
		"[CATEGORICAL]", "- city: unique=42 — top: Lima(900)",
	} {
		assert.Contains(t, md, s)
	}
}

func TestRenderAndDecodeRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.Render(&buf, sampleResult(), format, "sales.csv"))
			got, err := report.Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, sampleResult(), got)
		})
	}
}

func TestDecodeMissingSection(t *testing.T) {
	doc := `{"general":{"rows":1,"columns":1,"memory_mib":0,"column_names":["a"]},"nulls":{"columns":[]}}`
	_, err := report.Decode(strings.NewReader(doc), "json")
	var mre *report.MalformedResultError
	require.True(t, errors.As(err, &mre), "err = %v", err)
	assert.Equal(t, "duplicates", mre.Section)
}

func TestRenderUnknownFormat(t *testing.T) {
	err := report.Render(&bytes.Buffer{}, sampleResult(), "html", "")
	assert.True(t, errors.Is(err, report.ErrUnknownFormat))
}
