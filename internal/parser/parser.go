package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sirupsen/logrus"

	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

// Parser loads a tabular file into a Dataset.
type Parser interface {
	CanParse(filename string) bool
	Parse(path string, opt Options) (*dataset.Dataset, error)
}

// Options controls how tabular files are read.
type Options struct {
	// Delimiter for CSV. If 0, chosen by extension (.tsv is tab, otherwise comma).
	Delimiter rune
	// NullValues are cell texts treated as missing. Empty means DefaultNullValues.
	NullValues []string
	// MaxRows limits data rows loaded; 0 means unlimited.
	MaxRows int
	// SheetName selects an XLSX sheet (case-insensitive).
	SheetName string
	// SheetIndex is the 1-based XLSX sheet used when SheetName is empty.
	SheetIndex int
	// Log receives load diagnostics; nil discards them.
	Log logrus.FieldLogger
}

// DefaultNullValues are the cell texts read as missing values.
var DefaultNullValues = []string{"", "NA", "NaN", "null", "NULL", "<nil>"}

// DefaultOptions returns reasonable defaults for loading datasets.
func DefaultOptions() Options {
	return Options{
		NullValues: DefaultNullValues,
		SheetIndex: 1,
	}
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile selects a parser based on filename and loads the dataset.
func ParseFile(path string, opt Options) (*dataset.Dataset, error) {
	for _, p := range registry {
		if p.CanParse(path) {
			return p.Parse(path, opt)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
}

// Supported reports whether some registered parser accepts filename.
func Supported(filename string) bool {
	for _, p := range registry {
		if p.CanParse(filename) {
			return true
		}
	}
	return false
}

func init() {
	Register(csvParser{})
	Register(xlsxParser{})
}

// ErrUnsupported indicates a format is not supported yet.
var ErrUnsupported = errors.New("unsupported dataset format")

func logger(opt Options) logrus.FieldLogger {
	if opt.Log != nil {
		return opt.Log
	}
	l := logrus.New()
	l.Out = io.Discard
	return l
}

// fromRecords builds a Dataset from a header row followed by data rows.
// Rows are padded or cut to the header width; types are detected per column.
func fromRecords(name string, header []string, rows [][]string, opt Options) (*dataset.Dataset, error) {
	log := logger(opt).WithField("file", name)
	ncol := len(header)
	if ncol == 0 {
		return dataset.New(name)
	}
	if opt.MaxRows > 0 && len(rows) > opt.MaxRows {
		log.Warnf("processed only %d/%d rows due to MaxRows", opt.MaxRows, len(rows))
		rows = rows[:opt.MaxRows]
	}
	records := make([][]string, 0, len(rows)+1)
	hdr := make([]string, ncol)
	for i, h := range header {
		hdr[i] = strings.TrimSpace(h)
	}
	records = append(records, hdr)
	for _, rec := range rows {
		if len(rec) != ncol {
			tmp := make([]string, ncol)
			copy(tmp, rec)
			rec = tmp
		}
		records = append(records, rec)
	}
	nulls := opt.NullValues
	if len(nulls) == 0 {
		nulls = DefaultNullValues
	}
	start := time.Now()
	if len(rows) == 0 {
		// LoadRecords refuses header-only input; an empty table has string columns
		cols := make([]series.Series, ncol)
		for i, h := range hdr {
			cols[i] = series.New([]string{}, series.String, h)
		}
		return dataset.New(name, cols...)
	}
	df := dataframe.LoadRecords(records, dataframe.DetectTypes(true), dataframe.NaNValues(nulls))
	ds, err := dataset.FromDataFrame(name, df)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"rows":    ds.Rows(),
		"columns": ds.Cols(),
		"elapsed": time.Since(start).String(),
	}).Debug("dataset loaded")
	return ds, nil
}
