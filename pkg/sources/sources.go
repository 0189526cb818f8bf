// Package sources loads the YAML file describing which spreadsheet tabs feed
// the dashboard, for CLI-driven pulls that override the built-in GID map.
package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sheet maps one data kind to a spreadsheet tab.
type Sheet struct {
	Kind  string `yaml:"kind"`
	GID   string `yaml:"gid"`
	Label string `yaml:"label"`
}

type Sources struct {
	SpreadsheetID string  `yaml:"spreadsheet_id"`
	Sheets        []Sheet `yaml:"sheets"`
}

func Load(path string) (*Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var s Sources
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(s.Sheets) == 0 {
		return nil, fmt.Errorf("sources file has no sheets")
	}
	for i, sheet := range s.Sheets {
		if sheet.Kind == "" || sheet.GID == "" {
			return nil, fmt.Errorf("sheet %d is missing kind or gid", i)
		}
	}
	return &s, nil
}

// GIDs returns the kind-to-gid map the config layer consumes.
func (s *Sources) GIDs() map[string]string {
	out := make(map[string]string, len(s.Sheets))
	for _, sheet := range s.Sheets {
		out[sheet.Kind] = sheet.GID
	}
	return out
}

func (s *Sources) Print() {
	fmt.Printf("spreadsheet: %s\n", s.SpreadsheetID)
	for i, sheet := range s.Sheets {
		fmt.Printf("[%d] kind=%s gid=%s label=%s\n", i+1, sheet.Kind, sheet.GID, sheet.Label)
	}
}
