package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	// DateLayout is the filename date format for daily notes.
	DateLayout = "2006-01-02"
	// MonthLayout is the month key format for monthly summaries.
	MonthLayout = "2006-01"
)

var (
	dailyNamePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.md$`)
	monthKeyPattern  = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// DailyNote is one day's note file inside the vault.
type DailyNote struct {
	Date string // YYYY-MM-DD, taken from the filename stem
	Path string
}

// IsDailyNoteName reports whether name is a daily note filename
// (YYYY-MM-DD.md). Content is never inspected.
func IsDailyNoteName(name string) bool {
	return dailyNamePattern.MatchString(name)
}

// IsMonthKey reports whether key has the YYYY-MM shape. Calendar
// correctness is not checked here.
func IsMonthKey(key string) bool {
	return monthKeyPattern.MatchString(key)
}

// MonthKey returns the YYYY-MM grouping key for the note. This is a
// truncation of the filename stem, not calendar arithmetic: a note named
// 2024-13-40.md groups under 2024-13.
func (n DailyNote) MonthKey() string {
	if len(n.Date) < 7 {
		return n.Date
	}
	return n.Date[:7]
}

// ParsedDate parses the note's date as a real calendar day.
func (n DailyNote) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, n.Date)
}

// NoteFromFilename builds a DailyNote for a qualifying filename.
func NoteFromFilename(name, path string) DailyNote {
	return DailyNote{Date: strings.TrimSuffix(name, ".md"), Path: path}
}

// ParseMonthKey validates key as a real calendar month.
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse(MonthLayout, key)
}

// PreviousMonthKey returns the month key immediately before ref's month.
// Keys are zero-padded so plain string comparison stays ordered.
func PreviousMonthKey(ref time.Time) string {
	year, month := ref.Year(), int(ref.Month())
	if month == 1 {
		return fmt.Sprintf("%04d-12", year-1)
	}
	return fmt.Sprintf("%04d-%02d", year, month-1)
}

// MonthGroups maps a month key to that month's notes in ascending date
// order. A key mapped to an empty slice means the month had notes that
// were all dropped by a cutoff filter.
type MonthGroups map[string][]DailyNote

// SortedKeys returns the month keys in ascending order.
func (g MonthGroups) SortedKeys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
