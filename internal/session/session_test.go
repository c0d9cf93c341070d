package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NSTRvG/Sequence-Analyzer/internal/fasta"
)

func TestSessionAccumulates(t *testing.T) {
	s := New()
	require.Zero(t, s.Len())

	first := fasta.ParseString(">a [gene=x] [protein=p]\nGGCC\n")
	second := fasta.ParseString(">NC_1 Homo sapiens genome\nATAT\n")

	s.Append(first)
	s.Append(second)

	require.Equal(t, 2, s.Len())
	got := s.Records()
	require.Equal(t, "x", got[0].Name)
	require.Equal(t, "Homo sapiens", got[1].Name)
}

func TestSessionRecordsIsACopy(t *testing.T) {
	s := New()
	s.Append([]fasta.Record{{Name: "a", GCContent: 10, Protein: "p"}})

	got := s.Records()
	got[0].Name = "mutated"

	require.Equal(t, "a", s.Records()[0].Name)
}

func TestSessionEmpty(t *testing.T) {
	s := New()
	require.Empty(t, s.Records())
}
