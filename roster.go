package forest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoRecords is returned when a roster file has no trees.
	ErrNoRecords = errors.New("forest: roster has no trees")
	// ErrDuplicateID is returned when two roster entries share an ID.
	ErrDuplicateID = errors.New("forest: duplicate tree id")
	// ErrMissingID is returned when a roster entry has an empty ID.
	ErrMissingID = errors.New("forest: tree id is empty")
)

// rosterFile is the YAML shape of a roster:
//
//	trees:
//	  - id: "1"
//	    name: Groot
//	    species: Oak
type rosterFile struct {
	Trees []TreeRecord `yaml:"trees"`
}

// LoadRoster reads the tree records from a YAML roster file.
func LoadRoster(path string) ([]TreeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	records, err := ParseRoster(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ParseRoster decodes roster bytes and validates that every record has a
// unique, non-empty ID.
func ParseRoster(data []byte) ([]TreeRecord, error) {
	var rf rosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	if err := ValidateRecords(rf.Trees); err != nil {
		return nil, err
	}
	return rf.Trees, nil
}

// ValidateRecords checks that records is non-empty and that IDs are present
// and unique. The engine itself accepts any slice; this is for loaders.
func ValidateRecords(records []TreeRecord) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	seen := make(map[string]int, len(records))
	for i := range records {
		id := records[i].ID
		if id == "" {
			return fmt.Errorf("tree %d: %w", i, ErrMissingID)
		}
		if j, ok := seen[id]; ok {
			return fmt.Errorf("trees %d and %d share id %q: %w", j, i, id, ErrDuplicateID)
		}
		seen[id] = i
	}
	return nil
}
