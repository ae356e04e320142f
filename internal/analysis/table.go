package analysis

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

// ErrEmptyDataset is returned for datasets without rows; every percentage
// in a Result is relative to the row count.
var ErrEmptyDataset = errors.New("dataset has no rows")

// Options controls analysis behavior for tabular data.
type Options struct {
	// TopValues is how many most frequent values to keep per categorical column.
	TopValues int
	// IQRMultiplier scales the interquartile range when placing outlier fences.
	IQRMultiplier float64
}

// DefaultOptions returns the classic settings: top 5 values, 1.5·IQR fences.
func DefaultOptions() Options {
	return Options{
		TopValues:     5,
		IQRMultiplier: 1.5,
	}
}

// Analyze computes the exploratory statistics of ds. It does not modify ds
// and returns the same Result for the same input.
func Analyze(ds *dataset.Dataset, opt Options) (*Result, error) {
	if ds == nil || ds.Rows() == 0 {
		return nil, ErrEmptyDataset
	}
	def := DefaultOptions()
	if opt.TopValues <= 0 {
		opt.TopValues = def.TopValues
	}
	if opt.IQRMultiplier <= 0 {
		opt.IQRMultiplier = def.IQRMultiplier
	}
	rows := ds.Rows()

	res := &Result{
		General: &GeneralInfo{
			Rows:        rows,
			Columns:     ds.Cols(),
			MemoryMiB:   float64(ds.MemoryBytes()) / (1024 * 1024),
			ColumnNames: ds.Names(),
		},
		Types:      typeInfo(ds),
		Nulls:      &NullInfo{Columns: make([]NullStat, 0, ds.Cols())},
		Duplicates: &DuplicateInfo{},
	}

	for _, c := range ds.Columns() {
		n := c.NullCount()
		res.Nulls.Columns = append(res.Nulls.Columns, NullStat{Column: c.Name, Count: n, Percent: percent(n, rows)})
	}

	dup := countDuplicateRows(ds)
	res.Duplicates.Rows = dup
	res.Duplicates.Percent = percent(dup, rows)

	if nums := ds.ColumnsOfKind(dataset.Numeric); len(nums) > 0 {
		res.Numeric = &NumericSummary{Columns: make([]NumericStat, 0, len(nums))}
		for _, c := range nums {
			res.Numeric.Columns = append(res.Numeric.Columns, describe(c.Name, finite(c.Floats()), rows, opt.IQRMultiplier))
		}
	}

	if cats := ds.ColumnsOfKind(dataset.Categorical); len(cats) > 0 {
		res.Categorical = &CategoricalSummary{Columns: make([]CategoricalStat, 0, len(cats))}
		for _, c := range cats {
			unique, tops := valueCounts(c.Strings(), opt.TopValues)
			res.Categorical.Columns = append(res.Categorical.Columns, CategoricalStat{Column: c.Name, Unique: unique, TopValues: tops})
		}
	}
	return res, nil
}

func typeInfo(ds *dataset.Dataset) *TypeInfo {
	ti := &TypeInfo{Counts: map[string]int{}, ByColumn: make([]ColumnType, 0, ds.Cols())}
	for _, c := range ds.Columns() {
		ti.Counts[c.Type]++
		ti.ByColumn = append(ti.ByColumn, ColumnType{Name: c.Name, Type: c.Type, Kind: c.Kind})
	}
	return ti
}

func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}

// finite drops ±Inf; such values are left out of numeric statistics like nulls.
func finite(vals []float64) []float64 {
	out := vals[:0:0]
	for _, v := range vals {
		if !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// describe summarizes the non-null values of one numeric column. rows is the
// full row count, used as the outlier percentage base.
func describe(name string, vals []float64, rows int, k float64) NumericStat {
	s := NumericStat{Column: name, Count: len(vals)}
	if len(vals) == 0 {
		return s
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	var std float64
	s.Mean, std = stat.MeanStdDev(sorted, nil)
	if len(sorted) > 1 {
		s.Std = std
	}
	s.Min, _ = stats.Min(sorted)
	s.Max, _ = stats.Max(sorted)
	s.Median, _ = stats.Median(sorted)
	s.Q1 = quantile(sorted, 0.25)
	s.Q3 = quantile(sorted, 0.75)

	iqr := s.Q3 - s.Q1
	s.Outliers.Lower = s.Q1 - k*iqr
	s.Outliers.Upper = s.Q3 + k*iqr
	for _, v := range sorted {
		if v < s.Outliers.Lower || v > s.Outliers.Upper {
			s.Outliers.Count++
		}
	}
	s.Outliers.Percent = percent(s.Outliers.Count, rows)
	return s
}

// valueCounts returns the number of distinct values and the top n values by
// count; equal counts keep first-seen order.
func valueCounts(vals []string, n int) (int, []CategoryCount) {
	idx := map[string]int{}
	var counts []CategoryCount
	for _, v := range vals {
		i, ok := idx[v]
		if !ok {
			i = len(counts)
			idx[v] = i
			counts = append(counts, CategoryCount{Value: v})
		}
		counts[i].Count++
	}
	unique := len(counts)
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > n {
		counts = counts[:n]
	}
	return unique, counts
}

// countDuplicateRows counts rows equal, cell by cell, to an earlier row.
// Nulls compare equal to nulls.
func countDuplicateRows(ds *dataset.Dataset) int {
	seen := make(map[string]struct{}, ds.Rows())
	dup := 0
	var b strings.Builder
	for i := 0; i < ds.Rows(); i++ {
		b.Reset()
		vals, ok := ds.Row(i)
		for j, v := range vals {
			if !ok[j] {
				// length prefixes start with a digit, so this never collides
				b.WriteByte('\x00')
				continue
			}
			b.WriteString(strconv.Itoa(len(v)))
			b.WriteByte(':')
			b.WriteString(v)
		}
		key := b.String()
		if _, exists := seen[key]; exists {
			dup++
			continue
		}
		seen[key] = struct{}{}
	}
	return dup
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
