// Package utils provides small payload helpers shared by the ingest layer
// and the API surface.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common defects in hand-authored or
// machine-generated JSON payloads: single quotes, unquoted keys, trailing
// commas, comments, unclosed brackets, markdown code fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("JSON repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON converts an HJSON document (comments, optional quoting,
// trailing commas) into canonical JSON bytes, so one unmarshal path serves
// both formats.
func ParseHJSON(data []byte) ([]byte, error) {
	var v interface{}
	if err := hjson.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("HJSON parse failed: %w", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("HJSON re-encode failed: %w", err)
	}
	return out, nil
}
