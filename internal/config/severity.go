package config

import "strings"

// Severity is the minimum validation severity reported by the smithy CLI.
// The compiler itself interprets the threshold; this layer only checks enum
// membership and passes the value through.
type Severity string

// Severity values in ascending order.
const (
	SeverityNote    Severity = "NOTE"
	SeverityWarning Severity = "WARNING"
	SeverityDanger  Severity = "DANGER"
	SeverityError   Severity = "ERROR"
)

var severityRank = map[Severity]int{
	SeverityNote:    0,
	SeverityWarning: 1,
	SeverityDanger:  2,
	SeverityError:   3,
}

// ParseSeverity normalizes a raw severity string. Unknown values return
// ok=false so callers can surface a configuration error with the raw input.
func ParseSeverity(raw string) (Severity, bool) {
	s := Severity(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := severityRank[s]
	return s, ok
}

// AtLeast reports whether s is at or above other in the severity ordering.
func (s Severity) AtLeast(other Severity) bool {
	return severityRank[s] >= severityRank[other]
}

func (s Severity) String() string { return string(s) }
