package guard

const thoughtLogCapacity = 40

// ThoughtEntry is a single line in a guard's thought log.
type ThoughtEntry struct {
	Tick    int
	Label   string
	Message string
}

// ThoughtLog is a per-guard ring buffer rendered by the inspector panel.
type ThoughtLog struct {
	entries []ThoughtEntry
	head    int
	count   int
}

func NewThoughtLog() *ThoughtLog {
	return &ThoughtLog{entries: make([]ThoughtEntry, thoughtLogCapacity)}
}

// Add appends an entry to the log.
func (tl *ThoughtLog) Add(tick int, label, msg string) {
	tl.entries[tl.head] = ThoughtEntry{Tick: tick, Label: label, Message: msg}
	tl.head = (tl.head + 1) % thoughtLogCapacity
	if tl.count < thoughtLogCapacity {
		tl.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (tl *ThoughtLog) Recent() []ThoughtEntry {
	result := make([]ThoughtEntry, tl.count)
	for i := 0; i < tl.count; i++ {
		idx := (tl.head - tl.count + i + thoughtLogCapacity) % thoughtLogCapacity
		result[i] = tl.entries[idx]
	}
	return result
}
