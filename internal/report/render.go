package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/eda-cli/internal/analysis"
	"github.com/KaramelBytes/eda-cli/internal/utils"
)

// Formats lists the names accepted by Render and Decode.
var Formats = []string{"text", "markdown", "json", "yaml"}

// NormalizeFormat lowercases f and resolves aliases; unknown names yield ErrUnknownFormat.
func NormalizeFormat(f string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(f)) {
	case "", "text", "txt":
		return "text", nil
	case "markdown", "md":
		return "markdown", nil
	case "json":
		return "json", nil
	case "yaml", "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %s (use %s)", ErrUnknownFormat, f, strings.Join(Formats, "|"))
	}
}

// Extension returns the file extension used for a normalized format.
func Extension(format string) string {
	switch format {
	case "markdown":
		return ".md"
	case "json":
		return ".json"
	case "yaml":
		return ".yaml"
	default:
		return ".txt"
	}
}

// Render writes res to w in the given format. name labels the dataset in
// formats that show it.
func Render(w io.Writer, res *analysis.Result, format, name string) error {
	f, err := NormalizeFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case "markdown":
		md, err := Markdown(res, name)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	case "json":
		if err := Validate(res); err != nil {
			return err
		}
		b, err := utils.PrettyJSON(res)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case "yaml":
		if err := Validate(res); err != nil {
			return err
		}
		b, err := utils.PrettyYAML(res)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return Write(w, res)
	}
}

// Decode reads a Result previously rendered as json or yaml and validates it.
func Decode(r io.Reader, format string) (*analysis.Result, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	var res analysis.Result
	switch f {
	case "json":
		if err := json.NewDecoder(r).Decode(&res); err != nil {
			return nil, fmt.Errorf("decode json result: %w", err)
		}
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&res); err != nil {
			return nil, fmt.Errorf("decode yaml result: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: cannot decode %s results", ErrUnknownFormat, f)
	}
	if err := Validate(&res); err != nil {
		return nil, err
	}
	return &res, nil
}
