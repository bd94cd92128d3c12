// Package output serializes result sets to their on-disk formats.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Format selects the on-disk serialization for a result set.
type Format string

// Supported output formats.
const (
	FormatTxt  Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat converts a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTxt, FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected txt, csv or json)", s)
	}
}

// Write serializes candidates to path in the given format, overwriting
// any existing file. A write failure is fatal for the run and is
// returned to the caller.
func Write(path string, format Format, candidates []string) error {
	var data []byte
	var err error

	switch format {
	case FormatCSV:
		data, err = encodeCSV(candidates)
	case FormatJSON:
		data, err = encodeJSON(candidates)
	default:
		data = []byte(strings.Join(candidates, "\n"))
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func encodeCSV(candidates []string) ([]byte, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"password"}); err != nil {
		return nil, err
	}
	for _, c := range candidates {
		if err := w.Write([]string{c}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

func encodeJSON(candidates []string) ([]byte, error) {
	// A nil slice would serialize as null; an empty result set must
	// still round-trip as a valid array.
	if candidates == nil {
		candidates = []string{}
	}
	return json.MarshalIndent(candidates, "", "  ")
}
