package app

// Package app wires the parser, session and history store behind the load
// and export actions shared by the CLI, TUI and web entrypoints. It keeps
// the entrypoints free of parsing logic and makes the flows testable with
// an injected content source.

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NSTRvG/Sequence-Analyzer/internal/fasta"
	"github.com/NSTRvG/Sequence-Analyzer/internal/history"
	"github.com/NSTRvG/Sequence-Analyzer/internal/report"
	"github.com/NSTRvG/Sequence-Analyzer/internal/session"
)

// ContentSource supplies the raw text of a file chosen by the user, or a
// read failure. It stands in for whatever file-picking surface the
// entrypoint offers.
type ContentSource func(path string) (string, error)

// FileSource reads path from the local filesystem.
func FileSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Analyzer owns the session accumulated across load actions and drives the
// parse and export flows.
type Analyzer struct {
	Source  ContentSource
	Session *session.Session
	History *history.Store // optional
}

// New returns an analyzer with an empty session reading from disk.
func New() *Analyzer {
	return &Analyzer{Source: FileSource, Session: session.New()}
}

// LoadFile reads and parses path, appending the resulting records to the
// session and, when a history store is configured, to the history. A read
// failure returns no records at all; malformed content never fails, it
// degrades into sentinel values inside the parser. Zero records is a
// success with a nil slice: the caller decides whether to warn. A history
// write failure is returned alongside the records, which are already in
// the session by then.
func (a *Analyzer) LoadFile(ctx context.Context, path string) ([]fasta.Record, error) {
	text, err := a.Source(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	records := fasta.ParseString(text)
	if len(records) == 0 {
		return nil, nil
	}
	a.Session.Append(records)
	if a.History != nil {
		if err := a.History.Add(ctx, path, records); err != nil {
			return records, fmt.Errorf("record history for %s: %w", path, err)
		}
	}
	return records, nil
}

// Render writes the session's accumulated table to w.
func (a *Analyzer) Render(w io.Writer) error {
	return report.Render(w, a.Session.Records())
}

// Export writes the session's accumulated table to path. The session is
// left untouched whether or not the write succeeds, so a failed export can
// simply be retried with another path.
func (a *Analyzer) Export(path string) error {
	return report.ExportFile(path, a.Session.Records())
}
