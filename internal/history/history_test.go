package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NSTRvG/Sequence-Analyzer/internal/fasta"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	records := []fasta.Record{
		{Name: "abc", GCContent: 66.67, Protein: "kinase"},
		{Name: "Homo sapiens", GCContent: 50, Protein: fasta.CompleteGenome},
	}
	require.NoError(t, store.Add(ctx, "sample.fasta", records))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "abc", entries[0].Name)
	require.Equal(t, 66.67, entries[0].GCContent)
	require.Equal(t, "kinase", entries[0].Protein)
	require.Equal(t, "sample.fasta", entries[0].SourceFile)
	require.False(t, entries[0].AnalyzedAt.IsZero())

	require.Equal(t, records[1], entries[1].Record())
}

func TestListPreservesInsertOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "first.fasta", []fasta.Record{{Name: "one", Protein: "p"}}))
	require.NoError(t, store.Add(ctx, "second.fasta", []fasta.Record{{Name: "two", Protein: "p"}}))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "one", entries[0].Name)
	require.Equal(t, "two", entries[1].Name)
}

func TestListEmpty(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestReopenKeepsRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, "a.fasta", []fasta.Record{{Name: "a", Protein: "p"}}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
