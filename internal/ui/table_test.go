package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellAddsEllipsis(t *testing.T) {
	value := strings.Repeat("b", tableCellMaxWidth+10)

	got := TruncateTableCell(value)

	if lipgloss.Width(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d (%q)", tableCellMaxWidth, lipgloss.Width(got), got)
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	got := TruncateTableCell("Hello\nWorld\r\nAgain\tTab")

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	table := NewTableBuilder([]string{"ID", "LIST", "PROGRESS"}, 2)
	table.AddRow("1", "Groceries", "1 / 2")
	table.AddRow("12", "Chores", "0 / 0")

	expected := "" +
		"ID  LIST       PROGRESS\n" +
		"1   Groceries  1 / 2\n" +
		"12  Chores     0 / 0\n"
	if got := table.String(); got != expected {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, expected)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}
}

func TestFormatTableMeasuresStyledCells(t *testing.T) {
	styled := "\x1b[1mX\x1b[0m"
	got := FormatTable([]string{"A", "B"}, [][]string{{styled, "y"}})

	expected := "A  B\n" + styled + "  y\n"
	if got != expected {
		t.Fatalf("expected styled cell to pad by visible width, got %q", got)
	}
}
