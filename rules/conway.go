package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// maxNeighbors is the size of a Moore neighborhood
const maxNeighbors = 8

// Rule decides the next state of a cell from its current state and the number
// of living cells in its Moore neighborhood.
type Rule struct {
	birth   [maxNeighbors + 1]bool
	survive [maxNeighbors + 1]bool
}

var (
	// Conway is the standard B3/S23 rule
	Conway = MustParseRule("B3/S23")
	// TwoOrThree makes a cell alive iff it has exactly 2 or 3 living neighbors,
	// whatever its current state.
	TwoOrThree = MustParseRule("B23/S23")
)

// Apply returns whether a cell with the given state and neighbor count is alive next tick
func (r Rule) Apply(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > maxNeighbors {
		return false
	}
	if alive {
		return r.survive[neighbors]
	}
	return r.birth[neighbors]
}

// String returns the rule in B/S notation, e.g. "B3/S23"
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n, ok := range r.birth {
		if ok {
			sb.WriteByte(byte('0' + n))
		}
	}
	sb.WriteString("/S")
	for n, ok := range r.survive {
		if ok {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// ParseRule parses a rulestring in B/S notation. Both halves are required,
// either may be empty ("B/S" is the rule under which everything dies).
func ParseRule(s string) (Rule, error) {
	var r Rule

	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return r, errors.Errorf("[ParseRule] expected B<digits>/S<digits>, got %q", s)
	}
	if !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return r, errors.Errorf("[ParseRule] expected B<digits>/S<digits>, got %q", s)
	}
	if err := parseCounts(parts[0][1:], &r.birth); err != nil {
		return r, errors.Wrapf(err, "[ParseRule] bad birth counts in %q", s)
	}
	if err := parseCounts(parts[1][1:], &r.survive); err != nil {
		return r, errors.Wrapf(err, "[ParseRule] bad survival counts in %q", s)
	}
	return r, nil
}

// MustParseRule is like ParseRule but panics on malformed input
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseCounts(digits string, into *[maxNeighbors + 1]bool) error {
	for _, c := range digits {
		if c < '0' || c > '0'+maxNeighbors {
			return errors.Errorf("neighbor count %q out of range 0-%d", c, maxNeighbors)
		}
		into[c-'0'] = true
	}
	return nil
}
