package analysis

import "github.com/KaramelBytes/eda-cli/internal/dataset"

// Result is the outcome of analyzing one dataset. Numeric and Categorical are
// nil when the dataset has no column of that kind.
type Result struct {
	General     *GeneralInfo        `json:"general" yaml:"general"`
	Types       *TypeInfo           `json:"types" yaml:"types"`
	Nulls       *NullInfo           `json:"nulls" yaml:"nulls"`
	Duplicates  *DuplicateInfo      `json:"duplicates" yaml:"duplicates"`
	Numeric     *NumericSummary     `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Categorical *CategoricalSummary `json:"categorical,omitempty" yaml:"categorical,omitempty"`
}

type GeneralInfo struct {
	Rows        int      `json:"rows" yaml:"rows"`
	Columns     int      `json:"columns" yaml:"columns"`
	MemoryMiB   float64  `json:"memory_mib" yaml:"memory_mib"`
	ColumnNames []string `json:"column_names" yaml:"column_names"`
}

// TypeInfo counts columns per declared type and lists each column's type.
type TypeInfo struct {
	Counts   map[string]int `json:"counts" yaml:"counts"`
	ByColumn []ColumnType   `json:"by_column" yaml:"by_column"`
}

type ColumnType struct {
	Name string       `json:"name" yaml:"name"`
	Type string       `json:"type" yaml:"type"`
	Kind dataset.Kind `json:"kind" yaml:"kind"`
}

type NullInfo struct {
	Columns []NullStat `json:"columns" yaml:"columns"`
}

type NullStat struct {
	Column  string  `json:"column" yaml:"column"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

type DuplicateInfo struct {
	Rows    int     `json:"rows" yaml:"rows"`
	Percent float64 `json:"percent" yaml:"percent"`
}

type NumericSummary struct {
	Columns []NumericStat `json:"columns" yaml:"columns"`
}

// NumericStat holds describe-style statistics over the non-null values of a
// numeric column plus its IQR outlier count.
type NumericStat struct {
	Column   string      `json:"column" yaml:"column"`
	Count    int         `json:"count" yaml:"count"`
	Mean     float64     `json:"mean" yaml:"mean"`
	Std      float64     `json:"std" yaml:"std"`
	Min      float64     `json:"min" yaml:"min"`
	Q1       float64     `json:"q1" yaml:"q1"`
	Median   float64     `json:"median" yaml:"median"`
	Q3       float64     `json:"q3" yaml:"q3"`
	Max      float64     `json:"max" yaml:"max"`
	Outliers OutlierStat `json:"outliers" yaml:"outliers"`
}

// OutlierStat counts values outside the [Lower, Upper] Tukey fences.
type OutlierStat struct {
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
	Lower   float64 `json:"lower" yaml:"lower"`
	Upper   float64 `json:"upper" yaml:"upper"`
}

type CategoricalSummary struct {
	Columns []CategoricalStat `json:"columns" yaml:"columns"`
}

type CategoricalStat struct {
	Column    string          `json:"column" yaml:"column"`
	Unique    int             `json:"unique" yaml:"unique"`
	TopValues []CategoryCount `json:"top_values" yaml:"top_values"`
}

type CategoryCount struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}
