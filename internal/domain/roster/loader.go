package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rosterFile mirrors the YAML roster document:
//
//	contenders:
//	  - id: verstappen
//	    name: Max Verstappen
//	    team: Red Bull Racing
//	    points: 393
//	    wins: 9
//	    podiums: 14
//	    title_fight: true
type rosterFile struct {
	Contenders []Contender `yaml:"contenders"`
}

// Load reads and validates a roster from a YAML file.
func Load(path string) ([]Contender, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML roster document.
func Parse(data []byte) ([]Contender, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}
	if err := Validate(f.Contenders); err != nil {
		return nil, err
	}
	return f.Contenders, nil
}

// Validate checks roster-wide invariants: at least one entrant, unique
// non-empty IDs, and non-negative pre-race totals.
func Validate(list []Contender) error {
	if len(list) == 0 {
		return ErrEmptyRoster
	}
	seen := make(map[string]struct{}, len(list))
	for _, c := range list {
		if c.ID == "" {
			return fmt.Errorf("%w: %q", ErrMissingID, c.Name)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = struct{}{}
		if c.Points < 0 || c.Wins < 0 || c.Podiums < 0 {
			return fmt.Errorf("%w: %q", ErrNegativeTotal, c.ID)
		}
	}
	return nil
}
