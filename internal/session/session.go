package session

// Package session holds the records accumulated across load actions during
// a single run. The session is created empty by the entrypoint and handed
// to both the load and export handlers; it is appended to on every
// successful parse, read at export time and never pruned.

import (
	"sync"

	"github.com/NSTRvG/Sequence-Analyzer/internal/fasta"
)

// Session is the accumulating record collection. The mutex makes it safe
// to share with TUI command goroutines.
type Session struct {
	mu      sync.Mutex
	records []fasta.Record
}

// New returns an empty session.
func New() *Session { return &Session{} }

// Append adds records in parse order.
func (s *Session) Append(records []fasta.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
}

// Records returns a copy of the accumulated records, oldest parse first.
func (s *Session) Records() []fasta.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]fasta.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports how many records have accumulated.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
