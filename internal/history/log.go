package history

// Log owns the ordered calculation history for one session. Failed
// evaluations are never added. A Log is not safe for concurrent use;
// each session owns its log exclusively with no cross-session
// sharing.
type Log struct {
	entries []Entry
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// NewLogWith returns a log seeded with entries loaded from a store.
func NewLogWith(entries []Entry) *Log {
	return &Log{entries: append([]Entry(nil), entries...)}
}

// Add appends a successful calculation.
func (l *Log) Add(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns a copy of the log in insertion order.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Last returns the most recent entry, if any.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear removes all entries.
func (l *Log) Clear() {
	l.entries = nil
}
