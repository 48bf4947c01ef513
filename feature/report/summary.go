package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// MarshalSummary encodes s as indented JSON.
func MarshalSummary(s *Summary) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteJSON writes s to path as JSON.
func WriteJSON(path string, s *Summary) error {
	data, err := MarshalSummary(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary to %s: %w", path, err)
	}
	return nil
}
