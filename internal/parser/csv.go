package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

type csvParser struct{}

func (csvParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvParser) Parse(path string, opt Options) (*dataset.Dataset, error) {
	return ParseCSVFile(path, opt)
}

// ParseCSVFile loads a CSV/TSV file. The first record is the header.
func ParseCSVFile(path string, opt Options) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, filepath.Base(path), opt)
}

// ReadCSV loads CSV records from r; name labels the resulting Dataset.
func ReadCSV(r io.Reader, name string, opt Options) (*dataset.Dataset, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(name)
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = delim

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return dataset.New(name)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}
	return fromRecords(name, header, rows, opt)
}

func sniffDelimiter(path string) rune {
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".tsv") {
		return '\t'
	}
	return ','
}
