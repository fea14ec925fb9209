// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/settle-convert/pkg/types"
)

// ErrUnsupportedFormat is returned for output formats other than text,
// json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat validates an output format string. Empty means text.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case "":
		return types.OutputText, nil
	case types.OutputText, types.OutputJSON, types.OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q: use text, json or yaml", ErrUnsupportedFormat, s)
	}
}

// WriteExport writes res to w. Text writes only the converted document;
// json and yaml write the full result including structured values.
func WriteExport(w io.Writer, res types.Result, format types.OutputFormat) error {
	switch format {
	case types.OutputText, "":
		_, err := fmt.Fprintln(w, res.Converted)
		return err
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}
