package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

type xlsxParser struct{}

func (xlsxParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

func (xlsxParser) Parse(path string, opt Options) (*dataset.Dataset, error) {
	return ParseXLSXFile(path, opt)
}

// ParseXLSXFile loads one sheet of a workbook. The sheet is chosen by
// opt.SheetName (case-insensitive) or else by the 1-based opt.SheetIndex.
func ParseXLSXFile(path string, opt Options) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	sheet, err := pickSheet(sheets, opt, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	name := filepath.Base(path)
	if opt.SheetName != "" {
		name = fmt.Sprintf("%s (sheet: %s)", name, sheet)
	}
	if len(rows) == 0 {
		return dataset.New(name)
	}
	return fromRecords(name, rows[0], rows[1:], opt)
}

func pickSheet(sheets []string, opt Options, file string) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook '%s' has no sheets", file)
	}
	if opt.SheetName != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, opt.SheetName) {
				return s, nil
			}
		}
		return "", fmt.Errorf("sheet '%s' not found in workbook '%s'.\nAvailable sheets: %s",
			opt.SheetName, file, strings.Join(sheets, ", "))
	}
	idx := opt.SheetIndex
	if idx <= 0 {
		idx = 1
	}
	if idx > len(sheets) {
		return "", fmt.Errorf("sheet index %d out of range in workbook '%s' (%d sheets)", idx, file, len(sheets))
	}
	return sheets[idx-1], nil
}
