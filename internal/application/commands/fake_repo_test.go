package commands

import (
	"errors"
	"io"
	"sort"

	"dailyroll/internal/application"
	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

// fakeRepo is an in-memory ports.NoteRepository for command tests.
type fakeRepo struct {
	notes     map[string]string // date -> content
	summaries map[string]string // month -> summary content
	readErr   map[string]error  // date -> forced read failure
}

var _ ports.NoteRepository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		notes:     map[string]string{},
		summaries: map[string]string{},
		readErr:   map[string]error{},
	}
}

func (f *fakeRepo) addNote(date, content string) {
	f.notes[date] = content
}

func (f *fakeRepo) DiscoverMonths(filter ports.NoteFilter) (domain.MonthGroups, error) {
	dates := make([]string, 0, len(f.notes))
	for date := range f.notes {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := domain.MonthGroups{}
	for _, date := range dates {
		note := domain.DailyNote{Date: date, Path: "/vault/" + date + ".md"}
		month := note.MonthKey()
		if filter.Month != "" && month != filter.Month {
			continue
		}
		if filter.Cutoff != nil {
			day, err := note.ParsedDate()
			if err != nil {
				return nil, &application.DateFormatError{Value: date, Want: "YYYY-MM-DD"}
			}
			if _, ok := groups[month]; !ok {
				groups[month] = []domain.DailyNote{}
			}
			if day.After(*filter.Cutoff) {
				continue
			}
		}
		groups[month] = append(groups[month], note)
	}
	return groups, nil
}

func (f *fakeRepo) ReadNote(note domain.DailyNote) (string, error) {
	if err, ok := f.readErr[note.Date]; ok {
		return "", err
	}
	content, ok := f.notes[note.Date]
	if !ok {
		return "", errors.New("note not found: " + note.Date)
	}
	return content, nil
}

func (f *fakeRepo) RemoveNotes(notes []domain.DailyNote) error {
	for _, note := range notes {
		delete(f.notes, note.Date)
	}
	return nil
}

func (f *fakeRepo) SummaryPath(month string) string {
	return "/vault/" + month + ".md"
}

func (f *fakeRepo) SummaryExists(month string) (bool, error) {
	_, ok := f.summaries[month]
	return ok, nil
}

func (f *fakeRepo) ReadSummary(month string) (string, error) {
	return f.summaries[month], nil
}

func (f *fakeRepo) OpenSummary(month string) (io.WriteCloser, error) {
	if _, ok := f.summaries[month]; !ok {
		f.summaries[month] = ""
	}
	return &fakeSummaryWriter{repo: f, month: month}, nil
}

type fakeSummaryWriter struct {
	repo  *fakeRepo
	month string
}

func (w *fakeSummaryWriter) Write(p []byte) (int, error) {
	w.repo.summaries[w.month] += string(p)
	return len(p), nil
}

func (w *fakeSummaryWriter) Close() error { return nil }

// notesFor returns the fake's notes for one month, ascending.
func (f *fakeRepo) notesFor(month string) []domain.DailyNote {
	groups, _ := f.DiscoverMonths(ports.NoteFilter{Month: month})
	return groups[month]
}
