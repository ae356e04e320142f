package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Kind is the analysis category of a column, resolved once from its declared type.
type Kind int

const (
	Other Kind = iota
	Numeric
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "other"
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "numeric":
		*k = Numeric
	case "categorical":
		*k = Categorical
	case "other":
		*k = Other
	default:
		return fmt.Errorf("unknown column kind %q", string(b))
	}
	return nil
}

// KindOf maps a declared series type to its analysis kind.
func KindOf(t series.Type) Kind {
	switch t {
	case series.Int, series.Float:
		return Numeric
	case series.String:
		return Categorical
	default:
		return Other
	}
}

// rangeIndexBytes mirrors the fixed footprint of a default row index.
const rangeIndexBytes = 128

// Dataset is a read-only table of named, typed columns.
type Dataset struct {
	Name string
	rows int
	cols []*Column
}

// New builds a Dataset from series; all series must have the same length.
func New(name string, cols ...series.Series) (*Dataset, error) {
	if len(cols) == 0 {
		return &Dataset{Name: name}, nil
	}
	return FromDataFrame(name, dataframe.New(cols...))
}

// FromDataFrame wraps a gota DataFrame. The frame is copied column by column,
// so later changes to df do not leak into the Dataset.
func FromDataFrame(name string, df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("build dataset: %w", df.Err)
	}
	names := df.Names()
	ds := &Dataset{Name: name, rows: df.Nrow(), cols: make([]*Column, 0, len(names))}
	for _, n := range names {
		c, err := newColumn(df.Col(n))
		if err != nil {
			return nil, err
		}
		if c.Len() != ds.rows {
			return nil, fmt.Errorf("build dataset: column %q has %d values, want %d", n, c.Len(), ds.rows)
		}
		ds.cols = append(ds.cols, c)
	}
	return ds, nil
}

// Rows returns the number of rows.
func (d *Dataset) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dataset) Cols() int { return len(d.cols) }

// Names returns column names in dataset order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.cols))
	for i, c := range d.cols {
		out[i] = c.Name
	}
	return out
}

// Columns returns the columns in dataset order. The slice is a copy; the
// columns themselves are shared and must not be modified.
func (d *Dataset) Columns() []*Column {
	out := make([]*Column, len(d.cols))
	copy(out, d.cols)
	return out
}

// Column returns the i-th column.
func (d *Dataset) Column(i int) *Column { return d.cols[i] }

// ColumnByName returns the first column with the given name.
func (d *Dataset) ColumnByName(name string) (*Column, bool) {
	for _, c := range d.cols {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ColumnsOfKind returns the columns of kind k in dataset order.
func (d *Dataset) ColumnsOfKind(k Kind) []*Column {
	var out []*Column
	for _, c := range d.cols {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// MemoryBytes estimates the shallow in-memory size of the table: a fixed row
// index plus rows times the item size of every column.
func (d *Dataset) MemoryBytes() int64 {
	total := int64(rangeIndexBytes)
	for _, c := range d.cols {
		total += int64(d.rows) * itemSize(c.Type)
	}
	return total
}

// Row returns the cells of row i as text; nulls are reported as ok=false.
// Float cells use the shortest exact form of their value, so distinct
// floats never share a text.
func (d *Dataset) Row(i int) (vals []string, ok []bool) {
	vals = make([]string, len(d.cols))
	ok = make([]bool, len(d.cols))
	for j, c := range d.cols {
		if c.IsNull(i) {
			continue
		}
		if c.Type == string(series.Float) {
			vals[j] = strconv.FormatFloat(c.floats[i], 'g', -1, 64)
		} else {
			vals[j] = c.Record(i)
		}
		ok[j] = true
	}
	return vals, ok
}

func itemSize(t string) int64 {
	if t == string(series.Bool) {
		return 1
	}
	return 8
}

// Column is one named, typed column with its null mask.
type Column struct {
	Name string
	// Type is the declared element type: int, float, string or bool.
	Type string
	Kind Kind

	nulls   []bool
	floats  []float64
	records []string
}

func newColumn(s series.Series) (*Column, error) {
	if s.Err != nil {
		return nil, fmt.Errorf("column %q: %w", s.Name, s.Err)
	}
	t := s.Type()
	c := &Column{
		Name:    s.Name,
		Type:    string(t),
		Kind:    KindOf(t),
		nulls:   s.IsNaN(),
		records: s.Records(),
	}
	if c.Kind == Numeric {
		c.floats = s.Float()
		for i, f := range c.floats {
			if math.IsNaN(f) {
				c.nulls[i] = true
			}
		}
	}
	return c, nil
}

// Len returns the number of rows in the column.
func (c *Column) Len() int { return len(c.nulls) }

// IsNull reports whether row i is missing.
func (c *Column) IsNull(i int) bool { return c.nulls[i] }

// NullCount returns the number of missing values.
func (c *Column) NullCount() int {
	n := 0
	for _, isNull := range c.nulls {
		if isNull {
			n++
		}
	}
	return n
}

// Float returns the numeric value of row i; NaN for nulls and non-numeric columns.
func (c *Column) Float(i int) float64 {
	if c.floats == nil || c.nulls[i] {
		return math.NaN()
	}
	return c.floats[i]
}

// Record returns the textual value of row i.
func (c *Column) Record(i int) string { return c.records[i] }

// Floats returns the non-null numeric values in row order.
func (c *Column) Floats() []float64 {
	if c.floats == nil {
		return nil
	}
	out := make([]float64, 0, len(c.floats))
	for i, f := range c.floats {
		if !c.nulls[i] {
			out = append(out, f)
		}
	}
	return out
}

// Strings returns the non-null records in row order.
func (c *Column) Strings() []string {
	out := make([]string, 0, len(c.records))
	for i, r := range c.records {
		if !c.nulls[i] {
			out = append(out, r)
		}
	}
	return out
}
