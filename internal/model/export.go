package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Formats accepted by Marshal.
const (
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatCalls = "calls"
)

// Marshal renders m as YAML, indented JSON, or the engine call script.
func Marshal(m *Model, format string) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(m, "", "  ")
	case FormatCalls:
		var rec Recorder
		if err := m.Emit(&rec); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if _, err := rec.WriteTo(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown model format %q (want yaml, json or calls)", format)
}
