package report

// Package report renders analyzed records as fixed-width text tables, the
// same format for on-screen display and .txt export.

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NSTRvG/Sequence-Analyzer/internal/fasta"
)

// Column widths of the table. Values longer than their column overflow it
// rather than being truncated.
const (
	nameWidth    = 20
	metricWidth  = 15
	proteinWidth = 50
	ruleWidth    = 85
)

// Render writes the table for records to w: a header row, a dash rule and
// one left-justified row per record with the GC content at two decimals.
func Render(w io.Writer, records []fasta.Record) error {
	if _, err := fmt.Fprintf(w, "%-*s %-*s %-*s\n",
		nameWidth, "Gen", metricWidth, "Contenido GC (%)", proteinWidth, "Funcionalidad Proteína"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", ruleWidth)); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%-*s %-*s %-*s\n",
			nameWidth, rec.Name, metricWidth, fmt.Sprintf("%.2f", rec.GCContent), proteinWidth, rec.Protein); err != nil {
			return err
		}
	}
	return nil
}

// Text renders the table for records into a string.
func Text(records []fasta.Record) string {
	var b strings.Builder
	_ = Render(&b, records) // strings.Builder writes cannot fail
	return b.String()
}

// ExportFile writes the table for records to path as plain text. The
// conventional extension for path is .txt.
func ExportFile(path string, records []fasta.Record) error {
	if err := os.WriteFile(path, []byte(Text(records)), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
