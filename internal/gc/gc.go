package gc

// Package gc computes composition metrics over raw nucleotide sequences.

import "strings"

// Content returns the GC content of seq as a percentage of its total
// length. Only uppercase G and C are counted; no alphabet validation is
// performed, any other characters simply dilute the percentage. seq must
// be non-empty: callers substitute 0 for empty sequences instead of
// calling Content, which would otherwise divide by zero.
func Content(seq string) float64 {
	gc := strings.Count(seq, "G") + strings.Count(seq, "C")
	return float64(gc) / float64(len(seq)) * 100
}
