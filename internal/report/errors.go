package report

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/eda-cli/internal/analysis"
)

// ErrUnknownFormat indicates an output format other than text, markdown, json or yaml.
var ErrUnknownFormat = errors.New("unknown report format")

// MalformedResultError reports a Result that cannot be rendered.
type MalformedResultError struct {
	Section string
	Reason  string
}

func (e *MalformedResultError) Error() string {
	return fmt.Sprintf("malformed analysis result: %s: %s", e.Section, e.Reason)
}

// Validate checks that res carries the sections every renderer relies on and
// that per-column entries name known columns.
func Validate(res *analysis.Result) error {
	if res == nil {
		return &MalformedResultError{Section: "result", Reason: "nil"}
	}
	if res.General == nil {
		return &MalformedResultError{Section: "general", Reason: "missing"}
	}
	if res.Nulls == nil {
		return &MalformedResultError{Section: "nulls", Reason: "missing"}
	}
	if res.Duplicates == nil {
		return &MalformedResultError{Section: "duplicates", Reason: "missing"}
	}
	known := make(map[string]struct{}, len(res.General.ColumnNames))
	for _, n := range res.General.ColumnNames {
		known[n] = struct{}{}
	}
	for _, ns := range res.Nulls.Columns {
		if _, ok := known[ns.Column]; !ok {
			return &MalformedResultError{Section: "nulls", Reason: fmt.Sprintf("unknown column %q", ns.Column)}
		}
	}
	if res.Numeric != nil {
		for _, s := range res.Numeric.Columns {
			if _, ok := known[s.Column]; !ok {
				return &MalformedResultError{Section: "numeric", Reason: fmt.Sprintf("unknown column %q", s.Column)}
			}
		}
	}
	if res.Categorical != nil {
		for _, s := range res.Categorical.Columns {
			if _, ok := known[s.Column]; !ok {
				return &MalformedResultError{Section: "categorical", Reason: fmt.Sprintf("unknown column %q", s.Column)}
			}
		}
	}
	return nil
}
