package points

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFinish is returned when a finish string cannot be parsed.
var ErrInvalidFinish = errors.New("invalid finish")

// ParseFinish parses a finish from user input. Accepted forms: a bare
// position ("4"), a prefixed position ("p4", "P4"), or a no-points
// alias ("np", "dnf", "none").
func ParseFinish(s string) (Finish, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "np", "dnf", "none", "no-points":
		return NoPoints, nil
	}
	v = strings.TrimPrefix(v, "p")
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return NoPoints, fmt.Errorf("%w: %q", ErrInvalidFinish, s)
	}
	return Finish(n), nil
}
