package cardinality

import (
	"fmt"
	"regexp"
	"strconv"
)

// Unbounded marks a range with no upper limit, as in "1+".
const Unbounded = -1

// specRegex matches the three accepted spec forms: "N", "N+" and "N-M".
var specRegex = regexp.MustCompile(`^(\d+)(?:(\+)|-(\d+))?$`)

// Cardinality is the parsed form of a component-count constraint.
type Cardinality struct {
	Min int
	Max int // Unbounded when the spec carries a trailing '+'.
}

// Exactly builds a fixed-count cardinality without going through Parse.
func Exactly(n int) Cardinality {
	return Cardinality{Min: n, Max: n}
}

// AtLeast builds an open-ended cardinality without going through Parse.
func AtLeast(n int) Cardinality {
	return Cardinality{Min: n, Max: Unbounded}
}

// Parse interprets a stack cardinality spec string.
func Parse(spec string) (Cardinality, error) {
	matches := specRegex.FindStringSubmatch(spec)
	if matches == nil {
		return Cardinality{}, fmt.Errorf("malformed cardinality spec: %q", spec)
	}

	min, err := strconv.Atoi(matches[1])
	if err != nil {
		// Unreachable due to regex `\d+`
		return Cardinality{}, fmt.Errorf("internal error parsing cardinality minimum: %w", err)
	}

	c := Cardinality{Min: min, Max: min}
	switch {
	case matches[2] == "+":
		c.Max = Unbounded
	case matches[3] != "":
		max, err := strconv.Atoi(matches[3])
		if err != nil {
			return Cardinality{}, fmt.Errorf("internal error parsing cardinality maximum: %w", err)
		}
		if max < min {
			return Cardinality{}, fmt.Errorf("cardinality spec %q has maximum below minimum", spec)
		}
		c.Max = max
	}
	return c, nil
}

// Satisfied reports whether count falls inside the range.
func (c Cardinality) Satisfied(count int) bool {
	if count < c.Min {
		return false
	}
	return c.Max == Unbounded || count <= c.Max
}

// Optional reports whether the component may legally be absent.
func (c Cardinality) Optional() bool {
	return c.Min == 0
}

// String renders the canonical spec form.
func (c Cardinality) String() string {
	switch {
	case c.Max == Unbounded:
		return fmt.Sprintf("%d+", c.Min)
	case c.Min == c.Max:
		return strconv.Itoa(c.Min)
	default:
		return fmt.Sprintf("%d-%d", c.Min, c.Max)
	}
}
