// Package output serializes the seed dataset to JSON files and SQLite.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/models"
)

// ToJSON serializes the dataset. Pretty output uses two-space indentation.
func ToJSON(data *models.SeedData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// WriteJSONFile writes the dataset to path, creating parent directories.
func WriteJSONFile(path string, data *models.SeedData, pretty bool) error {
	out, err := ToJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to serialize seed: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
