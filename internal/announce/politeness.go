// Package announce pushes transient status text into live regions of a
// dom.Document, the way screen readers pick up aria-live updates.
package announce

import (
	"fmt"
	"strings"
)

// Politeness is the urgency hint of a live region.
type Politeness string

const (
	Polite    Politeness = "polite"
	Assertive Politeness = "assertive"
	// Off regions still hold text but are not spoken.
	Off Politeness = "off"
)

// ParsePoliteness converts a config value. The empty string maps to Polite.
func ParsePoliteness(s string) (Politeness, error) {
	switch p := Politeness(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return Polite, nil
	case Polite, Assertive, Off:
		return p, nil
	default:
		return "", fmt.Errorf("unknown politeness %q", s)
	}
}

// Valid reports whether p is one of the known levels.
func (p Politeness) Valid() bool {
	switch p {
	case Polite, Assertive, Off:
		return true
	}
	return false
}

// Role returns the ARIA role matching p, empty for Off.
func (p Politeness) Role() string {
	switch p {
	case Polite:
		return "status"
	case Assertive:
		return "alert"
	}
	return ""
}

func (p Politeness) String() string { return string(p) }
