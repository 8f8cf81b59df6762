// Package snapshot writes and reads the news snapshot file. The file is
// replaced wholesale on every run; there is no incremental update.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"newswatch/models"
)

// Write serializes entries as a JSON array at path. The snapshot is written
// to a temp file in the same directory and renamed into place, so a reader
// never observes a partially written file. An empty run writes "[]".
func Write(path string, entries []models.Entry) error {
	items := make([]models.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entry.ToItem())
	}

	blob, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}
	blob = append(blob, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot back as wire items.
func Load(path string) ([]models.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("error decoding snapshot: %w", err)
	}
	return items, nil
}
