// Package ingest loads structured statement payloads from JSON or HJSON
// sources. It does not parse source documents; input is assumed to already
// be the four-table statement record, possibly hand-edited (hence the
// repair fallback).
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ratio_analysis/pkg/core/utils"
	"ratio_analysis/pkg/models"
)

// ParseStatementJSON unmarshals a statement record from JSON. Malformed
// payloads (trailing commas, single quotes, code fences) go through one
// repair pass before the parse is declared failed.
func ParseStatementJSON(payload []byte) (*models.StatementData, error) {
	var data models.StatementData
	if err := json.Unmarshal(payload, &data); err == nil {
		return &data, nil
	}

	repaired, err := utils.RepairJSON(string(payload))
	if err != nil {
		return nil, fmt.Errorf("statement payload is not valid JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &data); err != nil {
		return nil, fmt.Errorf("statement payload unusable after repair: %w", err)
	}
	fmt.Println("[INGEST] Statement payload required JSON repair")
	return &data, nil
}

// ParseStatementHJSON converts an analyst-authored HJSON statement file to
// JSON and unmarshals it.
func ParseStatementHJSON(payload []byte) (*models.StatementData, error) {
	jsonBytes, err := utils.ParseHJSON(payload)
	if err != nil {
		return nil, err
	}
	var data models.StatementData
	if err := json.Unmarshal(jsonBytes, &data); err != nil {
		return nil, fmt.Errorf("statement HJSON has wrong shape: %w", err)
	}
	return &data, nil
}

// LoadStatementFile reads a statement record from disk, dispatching on the
// file extension (.hjson vs .json).
func LoadStatementFile(path string) (*models.StatementData, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".hjson") {
		return ParseStatementHJSON(payload)
	}
	return ParseStatementJSON(payload)
}
