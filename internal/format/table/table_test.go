package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"root", "navigation", "root node"},
		{"3:2", "big", "My Big Story"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignLeft})
	want := []string{
		"root  navigation  root node",
		"3:2   big         My Big Story",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	got := Format([][]string{{"1", "a"}, {"10", "b"}}, []Alignment{AlignRight})
	if got[0] != " 1  a" || got[1] != "10  b" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatRaggedRowsAndEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
	got := Format([][]string{{"a"}, {"bb", "c"}}, nil)
	if got[0] != "a" || got[1] != "bb  c" {
		t.Fatalf("unexpected rows %q", got)
	}
}
