package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Word", "Count"}
	rows := [][]string{
		{"efficiency", "12"},
		{"go", "3"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Word        Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "efficiency     12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "go              3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
