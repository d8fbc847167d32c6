// Package history keeps the calculation log: in-memory ownership for
// a session plus pluggable persistence backends.
package history

import (
	"strconv"
	"strings"
)

// Entry is one successful calculation: the expression as typed and
// its numeric result.
type Entry struct {
	Expression string
	Result     float64
}

// FormatResult renders r the way entries are displayed and persisted.
// The shortest 'g' form round-trips exactly through ParseFloat.
func FormatResult(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// String renders the entry in its display and on-disk form,
// "<expression> = <result>".
func (e Entry) String() string {
	return e.Expression + " = " + FormatResult(e.Result)
}

// ParseLine parses one persisted record. The expression is everything
// before the first " = "; the remainder must parse as a float64.
// Lines that do not conform are reported via ok=false and dropped by
// the loader.
func ParseLine(line string) (Entry, bool) {
	idx := strings.Index(line, " = ")
	if idx < 0 {
		return Entry{}, false
	}
	result, err := strconv.ParseFloat(strings.TrimSpace(line[idx+3:]), 64)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Expression: line[:idx], Result: result}, true
}
