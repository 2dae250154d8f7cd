package domain

import (
	"testing"
	"time"
)

func TestIsDailyNoteName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"2024-01-02.md", true},
		{"2024-13-40.md", true}, // pattern match only, no calendar check
		{"2024-01.md", false},
		{"invalid.md", false},
		{"2024-01-02.txt", false},
		{"x2024-01-02.md", false},
		{"2024-01-02.md.bak", false},
	}

	for _, tt := range tests {
		if got := IsDailyNoteName(tt.name); got != tt.want {
			t.Errorf("IsDailyNoteName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMonthKey_TruncatesStem(t *testing.T) {
	note := NoteFromFilename("2024-13-40.md", "/vault/2024-13-40.md")
	if note.MonthKey() != "2024-13" {
		t.Errorf("expected month key 2024-13, got %s", note.MonthKey())
	}
}

func TestParsedDate_InvalidCalendarDate(t *testing.T) {
	note := DailyNote{Date: "2024-13-40"}
	if _, err := note.ParsedDate(); err == nil {
		t.Error("expected parse error for 2024-13-40")
	}
}

func TestPreviousMonthKey(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"2024-03-15", "2024-02"},
		{"2024-01-01", "2023-12"},
		{"2024-12-31", "2024-11"},
	}

	for _, tt := range tests {
		ref, err := time.Parse(DateLayout, tt.ref)
		if err != nil {
			t.Fatalf("bad test date %s: %v", tt.ref, err)
		}
		if got := PreviousMonthKey(ref); got != tt.want {
			t.Errorf("PreviousMonthKey(%s) = %s, want %s", tt.ref, got, tt.want)
		}
	}
}

func TestMonthGroups_SortedKeys(t *testing.T) {
	groups := MonthGroups{
		"2024-02": nil,
		"2023-12": nil,
		"2024-01": nil,
	}

	keys := groups.SortedKeys()
	want := []string{"2023-12", "2024-01", "2024-02"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %s, want %s", i, keys[i], want[i])
		}
	}
}
