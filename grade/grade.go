// Package grade converts between climbing-grade labels and the normalized
// integer point scale used to compare difficulty across backends.
//
// Points follow the French scale packed into an integer: "6a+" → 605,
// "7c" → 720, "4b-" → 405. A backend site may ship its own grading system
// table; when it does, table lookups always win over the algorithmic
// conversion, so free-form systems ("V5", "5.12d") still encode and decode
// consistently.
package grade

import (
	"sort"
	"strings"
)

const (
	// Unknown is the sentinel for a blank or unparseable grade label.
	Unknown = 0
	// DefaultMin and DefaultMax bound the normalized point scale ("3a".."9c+").
	DefaultMin = 300
	DefaultMax = 950
)

// System is a per-site grading system. A nil *System means the default
// algorithmic French-scale conversion applies.
type System struct {
	// FreeForm indicates labels carry no intrinsic ordering; only the table
	// gives them point values.
	FreeForm bool `json:"free_form"`
	// Hint is an advisory description of the system ("French", "V-scale", ...).
	Hint string `json:"hint,omitempty"`
	// Table maps grade labels to point values. Labels are unique; ordering is
	// by point value, never by map order.
	Table map[string]int `json:"table,omitempty"`
	// Min and Max override the default point bounds when non-zero.
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

// MinPoints returns the lowest valid point value for the system.
func (s *System) MinPoints() int {
	if s == nil {
		return DefaultMin
	}
	if s.Min != 0 {
		return s.Min
	}
	if min, _, ok := s.tableBounds(); ok {
		return min
	}
	return DefaultMin
}

// MaxPoints returns the highest valid point value for the system.
func (s *System) MaxPoints() int {
	if s == nil {
		return DefaultMax
	}
	if s.Max != 0 {
		return s.Max
	}
	if _, max, ok := s.tableBounds(); ok {
		return max
	}
	return DefaultMax
}

func (s *System) tableBounds() (min, max int, ok bool) {
	for _, v := range s.Table {
		if !ok || v < min {
			min = v
		}
		if !ok || v > max {
			max = v
		}
		ok = true
	}
	return min, max, ok
}

// Encode converts a grade label to points. A blank label encodes to Unknown.
// When sys carries a table entry for the verbatim label, that value wins;
// otherwise the French-scale fallback applies: first character is the major
// level (3–9), "a"/"b"/"c" the minor letter, "+"/"-" a ±5 modifier.
// Labels without a leading 3–9 digit encode to Unknown.
func Encode(label string, sys *System) int {
	if strings.TrimSpace(label) == "" {
		return Unknown
	}
	if sys != nil {
		if pts, ok := sys.Table[label]; ok {
			return pts
		}
	}

	l := strings.ToLower(strings.TrimSpace(label))

	c := l[0]
	if c < '3' || c > '9' {
		return Unknown
	}
	number := int(c - '0')

	letter := 0
	switch {
	case strings.Contains(l, "a"):
		letter = 0
	case strings.Contains(l, "b"):
		letter = 1
	case strings.Contains(l, "c"):
		letter = 2
	}

	modifier := 0
	switch {
	case strings.Contains(l, "+"):
		modifier = 5
	case strings.Contains(l, "-"):
		modifier = -5
	}

	return (number*10+letter)*10 + modifier
}

// Decode converts points back to a grade label. A table entry with a matching
// value wins (ties broken by lexicographically smallest label, so the result
// is deterministic); otherwise the French-scale fallback is inverted.
//
// Values ending in 5 are ambiguous: (n,letter)+"+" and (n,letter+1)+"-"
// encode to the same integer (605 is both "6a+" and "6b-"). The "+" reading
// wins whenever its digits are structurally valid; the "-" reading is used
// only when they are not, which covers the "Xa-" values (595 → "6a-").
func Decode(points int, sys *System) (string, bool) {
	if sys != nil && len(sys.Table) > 0 {
		var labels []string
		for label, v := range sys.Table {
			if v == points {
				labels = append(labels, label)
			}
		}
		if len(labels) > 0 {
			sort.Strings(labels)
			return labels[0], true
		}
	}

	if points <= 0 {
		return "", false
	}

	switch points % 10 {
	case 0:
		return formatLabel(points/10, "")
	case 5:
		if label, ok := formatLabel(points/10, "+"); ok {
			return label, ok
		}
		return formatLabel((points+5)/10, "-")
	default:
		return "", false
	}
}

// formatLabel renders a base value (number*10+letter) plus modifier suffix,
// rejecting digit combinations outside the scale.
func formatLabel(base int, suffix string) (string, bool) {
	number := base / 10
	letter := base % 10
	if number < 3 || number > 9 || letter > 2 {
		return "", false
	}
	return string(rune('0'+number)) + string(rune('a'+letter)) + suffix, true
}

// IsInRange reports whether points lies within the system's valid bounds.
// Out-of-range values are invalid, never clamped.
func IsInRange(points int, sys *System) bool {
	return points >= sys.MinPoints() && points <= sys.MaxPoints()
}
