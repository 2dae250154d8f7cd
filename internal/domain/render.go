package domain

import (
	"regexp"
	"strings"
)

// TodoMarker prefixes an unchecked checklist line.
const TodoMarker = "- [ ] "

// MergeOptions controls how daily notes are folded into a monthly summary.
type MergeOptions struct {
	// KeepEmpty includes notes whose content is empty (or becomes empty
	// after filtering) as bare date headers.
	KeepEmpty bool
	// Append extends an existing summary instead of refusing to touch it.
	Append bool
	// SkipDuplicateTodos drops checklist lines already present in the
	// summary or written earlier in the same run.
	SkipDuplicateTodos bool
}

// IsTodoLine reports whether the trimmed line is an unchecked checklist
// item. The match is exact and case-sensitive, marker included.
func IsTodoLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), TodoMarker)
}

// TodoSet tracks checklist lines already emitted into a monthly summary.
// Lines are stored trimmed.
type TodoSet map[string]struct{}

// NewTodoSet returns an empty set.
func NewTodoSet() TodoSet {
	return TodoSet{}
}

// Has reports whether the trimmed line is already in the set.
func (s TodoSet) Has(line string) bool {
	_, ok := s[strings.TrimSpace(line)]
	return ok
}

// Add records the trimmed line.
func (s TodoSet) Add(line string) {
	s[strings.TrimSpace(line)] = struct{}{}
}

// CollectTodos adds every checklist line in content to the set. Used to
// preload the set from an existing summary before an append merge.
func (s TodoSet) CollectTodos(content string) {
	for _, line := range strings.Split(content, "\n") {
		if IsTodoLine(line) {
			s.Add(line)
		}
	}
}

// Section is one rendered daily-note block ready to append to a summary.
type Section struct {
	Date string
	Body string // may be empty for KeepEmpty notes
}

// String renders the section: date header, blank line, body, blank line.
func (s Section) String() string {
	return "# " + s.Date + "\n\n" + s.Body + "\n\n"
}

// RenderNote applies the inclusion rules to one day's raw content and
// reports whether the note should be written. The seen set is shared
// across a whole month so earlier days suppress later duplicates.
func RenderNote(date, content string, seen TodoSet, opts MergeOptions) (Section, bool) {
	trimmed := strings.TrimSpace(content)
	if trimmed != "" {
		trimmed = strings.TrimSpace(stripSelfHeader(date, trimmed))
	}
	if trimmed == "" {
		// Empty, whitespace-only, or nothing but its own date header.
		if !opts.KeepEmpty {
			return Section{}, false
		}
		return Section{Date: date}, true
	}

	body, meaningful := filterTodos(trimmed, seen, opts.SkipDuplicateTodos)
	if !meaningful && !opts.KeepEmpty {
		return Section{}, false
	}
	return Section{Date: date, Body: body}, true
}

// stripSelfHeader removes header lines repeating the note's own date, so
// a hand-typed "# 2024-01-02" inside 2024-01-02.md is not duplicated
// under the generated header. Literal pattern match, not markdown parsing.
func stripSelfHeader(date, content string) string {
	re := regexp.MustCompile(`(?m)^#\s*` + regexp.QuoteMeta(date) + `[ \t]*\n?`)
	return re.ReplaceAllString(content, "")
}

// filterTodos drops duplicate checklist lines (when enabled) and reports
// whether any meaningful line survived. Blank lines are kept structurally
// but do not count as meaningful.
func filterTodos(content string, seen TodoSet, skipDuplicates bool) (string, bool) {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	meaningful := false

	for _, line := range lines {
		if skipDuplicates && IsTodoLine(line) {
			if seen.Has(line) {
				continue
			}
			seen.Add(line)
			kept = append(kept, line)
			meaningful = true
			continue
		}
		if strings.TrimSpace(line) != "" {
			meaningful = true
		}
		kept = append(kept, line)
	}

	for len(kept) > 0 && strings.TrimSpace(kept[0]) == "" {
		kept = kept[1:]
	}

	body := strings.TrimRight(strings.Join(kept, "\n"), " \t\n")
	return body, meaningful
}
