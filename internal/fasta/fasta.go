package fasta

// Package fasta parses FASTA-style gene listings into analyzed records.
// It intentionally keeps parsing simple and conservative: malformed
// headers never abort a parse, they degrade into sentinel values.

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/NSTRvG/Sequence-Analyzer/internal/gc"
)

const (
	// Unknown is the sentinel used when a bracketed header carries no
	// usable gene, locus_tag or protein information.
	Unknown = "Unknown"
	// CompleteGenome annotates records whose header has no bracketed
	// metadata and is assumed to describe a whole genome.
	CompleteGenome = "complete genome"
)

// Record is one analyzed FASTA entry: an identifying name, the GC content
// of its sequence body rounded to two decimals, and a protein annotation.
type Record struct {
	Name      string
	GCContent float64
	Protein   string
}

// group pairs a header line with the concatenated sequence body that
// follows it.
type group struct {
	header string
	body   string
}

// Parse reads FASTA records from r and returns one Record per header line,
// in input order. Lines beginning with '>' start a record; the following
// non-header lines are trimmed and concatenated (no separator) into its
// sequence body. Stray lines before the first header are skipped. Parse
// never fails: input without any header yields an empty slice.
func Parse(r io.Reader) []Record {
	var records []Record
	for _, g := range groups(r) {
		records = append(records, classify(g))
	}
	return records
}

// ParseString parses an in-memory FASTA blob.
func ParseString(s string) []Record {
	return Parse(strings.NewReader(s))
}

// groups walks the lines of r once, attaching each run of non-header lines
// to the preceding header. A header with no trailing lines keeps an empty
// body. The seen flag, not the header text, decides whether a record is
// open: a bare ">" line is still a record.
func groups(r io.Reader) []group {
	scanner := bufio.NewScanner(r)
	var gs []group
	var current group
	seen := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if seen {
				gs = append(gs, current)
			}
			current = group{header: line}
			seen = true
		} else if seen {
			current.body += line
		}
	}
	if seen {
		gs = append(gs, current)
	}
	return gs
}

// classify turns a header/body group into a Record. Headers containing '['
// carry bracketed key=value metadata; headers without one are treated as
// complete-genome entries named after their organism words.
func classify(g group) Record {
	if strings.Contains(g.header, "[") {
		return annotated(g)
	}
	return wholeSequence(g)
}

// wholeSequence handles headers shaped like ">ACCESSION Genus species ...":
// the organism name is the two tokens after the accession. Shorter headers
// just yield a shorter (possibly empty) name.
func wholeSequence(g group) Record {
	parts := strings.Split(g.header, " ")
	end := 3
	if end > len(parts) {
		end = len(parts)
	}
	var name string
	if len(parts) > 1 {
		name = strings.Join(parts[1:end], " ")
	}
	return Record{Name: name, GCContent: bodyGC(g.body), Protein: CompleteGenome}
}

// annotated splits a bracketed header on '[' and scans the fragments for
// gene=, locus_tag= and protein= fields. A gene= fragment always sets the
// name, so gene wins over locus_tag regardless of fragment order; a later
// protein= fragment overwrites an earlier one.
func annotated(g group) Record {
	name := Unknown
	protein := Unknown
	for _, frag := range strings.Split(g.header, "[") {
		switch {
		case strings.Contains(frag, "gene="):
			name = fieldValue(frag, "gene=")
		case strings.Contains(frag, "locus_tag=") && name == Unknown:
			name = fieldValue(frag, "locus_tag=")
		case strings.Contains(frag, "protein="):
			protein = fieldValue(frag, "protein=")
		}
	}
	return Record{Name: name, GCContent: bodyGC(g.body), Protein: protein}
}

// fieldValue extracts the text after the last occurrence of key in frag,
// up to the first ']' that follows. This is a flat substring search, not a
// bracket matcher: on malformed headers the closing bracket may belong to
// another group. Known quirk, kept so output on such headers stays stable.
func fieldValue(frag, key string) string {
	v := frag[strings.LastIndex(frag, key)+len(key):]
	if i := strings.Index(v, "]"); i >= 0 {
		v = v[:i]
	}
	return v
}

// bodyGC computes the rounded GC content of a body, guarding empty bodies
// so gc.Content never divides by zero.
func bodyGC(body string) float64 {
	if body == "" {
		return 0
	}
	return math.Round(gc.Content(body)*100) / 100
}
