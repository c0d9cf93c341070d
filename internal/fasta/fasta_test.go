package fasta

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseAnnotatedHeader(t *testing.T) {
	recs := ParseString(">seq1 [gene=abc] [protein=kinase]\nATGCGC\n")
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	want := Record{Name: "abc", GCContent: 66.67, Protein: "kinase"}
	if recs[0] != want {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
}

func TestParseWholeSequenceHeader(t *testing.T) {
	recs := ParseString(">NC_000001.1 Homo sapiens chromosome\nATGCATGC\n")
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	want := Record{Name: "Homo sapiens", GCContent: 50, Protein: CompleteGenome}
	if recs[0] != want {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
}

func TestParseEmptyBodyAndLocusTag(t *testing.T) {
	recs := ParseString(">seq1 [locus_tag=xyz]\n\n>seq2 [gene=foo]\nCCGG\n")
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0] != (Record{Name: "xyz", GCContent: 0, Protein: Unknown}) {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1] != (Record{Name: "foo", GCContent: 100, Protein: Unknown}) {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestParseNoHeaders(t *testing.T) {
	recs := ParseString("ATGC\nGGTT\n\nsome stray text\n")
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %+v", recs)
	}
}

func TestParseLastProteinWins(t *testing.T) {
	recs := ParseString(">seq1 [protein=A][protein=B]\nATGC\n")
	if len(recs) != 1 || recs[0].Protein != "B" {
		t.Fatalf("expected protein B, got %+v", recs)
	}
}

func TestParseGeneBeatsLocusTagRegardlessOfOrder(t *testing.T) {
	recs := ParseString(">seq1 [locus_tag=LT1] [gene=g1]\nATGC\n")
	if len(recs) != 1 || recs[0].Name != "g1" {
		t.Fatalf("expected gene name g1, got %+v", recs)
	}
}

func TestParseBracketsWithoutKnownKeys(t *testing.T) {
	recs := ParseString(">seq1 [organism=E. coli]\nATGC\n")
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Name != Unknown || recs[0].Protein != Unknown {
		t.Fatalf("expected Unknown sentinels, got %+v", recs[0])
	}
}

func TestParseHeaderFollowedByHeader(t *testing.T) {
	recs := ParseString(">a [gene=x]\n>NC_1 Homo sapiens genome\nGGCC\n")
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].GCContent != 0 {
		t.Fatalf("expected zero metric for bodyless record, got %+v", recs[0])
	}
	if recs[1].GCContent != 100 {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestParseShortWholeSequenceHeader(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{">NC_1 Homo\nAT\n", "Homo"},
		{">NC_1\nAT\n", ""},
		{">\nAT\n", ""},
	}
	for _, c := range cases {
		recs := ParseString(c.input)
		if len(recs) != 1 {
			t.Fatalf("input %q: expected 1 record, got %d", c.input, len(recs))
		}
		if recs[0].Name != c.want {
			t.Fatalf("input %q: expected name %q, got %q", c.input, c.want, recs[0].Name)
		}
	}
}

func TestParseFlatBracketExtraction(t *testing.T) {
	// the gene fragment never closes its bracket; the flat substring
	// search keeps the whole remainder instead of erroring
	recs := ParseString(">seq [gene=abc [note=x]\nATGC\n")
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Name != "abc " {
		t.Fatalf("expected flat extraction %q, got %q", "abc ", recs[0].Name)
	}
}

func TestParseMultiLineBody(t *testing.T) {
	// body lines are trimmed and concatenated without separators
	recs := ParseString(">seq1 [gene=g]\n  ATGC  \nGGCC\n")
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	// ATGCGGCC: 6 of 8 are G/C
	if recs[0].GCContent != 75 {
		t.Fatalf("expected 75, got %v", recs[0].GCContent)
	}
}

func TestParseStrayLinesBeforeFirstHeader(t *testing.T) {
	recs := ParseString("; comment\nGGGG\n>seq [gene=g]\nATAT\n")
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].GCContent != 0 {
		t.Fatalf("stray lines leaked into the body: %+v", recs[0])
	}
}

func TestParseRounding(t *testing.T) {
	// 1 of 3 -> 33.333... rounds to 33.33; 2 of 3 -> 66.666... rounds to 66.67
	recs := ParseString(">a [gene=x]\nGAA\n>b [gene=y]\nGCT\n")
	if recs[0].GCContent != 33.33 {
		t.Fatalf("expected 33.33, got %v", recs[0].GCContent)
	}
	if recs[1].GCContent != 66.67 {
		t.Fatalf("expected 66.67, got %v", recs[1].GCContent)
	}
}

func TestParseIdempotent(t *testing.T) {
	input := ">seq1 [gene=abc] [protein=kinase]\nATGCGC\n>NC_1 Homo sapiens genome\nATGC\n"
	first := ParseString(input)
	second := ParseString(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parse is not idempotent: %+v vs %+v", first, second)
	}
}

func TestParseReader(t *testing.T) {
	recs := Parse(strings.NewReader(">seq [gene=g] [protein=p]\nGG\n"))
	if len(recs) != 1 || recs[0].Name != "g" || recs[0].Protein != "p" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}
