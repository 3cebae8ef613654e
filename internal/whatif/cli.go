package whatif

import (
	"fmt"
	"os"
	"strings"

	"github.com/okian/clincher/internal/domain/points"
)

// ParseFinishes parses a comma-separated assignment list such as
// "verstappen=1,norris=2,leclerc=dnf" into per-contender finishes.
func ParseFinishes(s string) (map[string]points.Finish, error) {
	finishes := make(map[string]points.Finish)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, value, ok := strings.Cut(pair, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid finish assignment %q", pair)
		}
		f, err := points.ParseFinish(value)
		if err != nil {
			return nil, err
		}
		finishes[id] = f
	}
	return finishes, nil
}

// ShowHelp prints usage information for the what-if tool.
func ShowHelp() {
	os.Stdout.WriteString(`Clincher What-If Tool
=====================

Computes hypothetical championship standings and enumerates the
combinations that leave a contender sole champion.

Usage:
  go run cmd/whatif/main.go [options]

Options:
  -roster string
        Path to a YAML roster file (default: built-in sample roster)
  -finishes string
        Hypothetical finishes, e.g. "verstappen=1,norris=2,leclerc=dnf"
  -target string
        Contender id to enumerate winning scenarios for
  -table
        Print the points table and exit
  -help
        Show this help message

Examples:
  # Project standings for a hypothetical race result
  go run cmd/whatif/main.go -finishes "verstappen=2,norris=1,leclerc=3"

  # How can norris still win the title?
  go run cmd/whatif/main.go -target norris
`)
}
