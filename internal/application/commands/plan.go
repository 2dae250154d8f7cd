package commands

import (
	"time"

	"dailyroll/internal/application"
	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

// PlanSelector chooses which months a merge run covers. Reference is the
// injected "today"; callers pass time.Now() outside tests.
type PlanSelector struct {
	Month      string // explicit YYYY-MM key
	DaysToKeep int    // >0: merge only notes older than the trailing window
	Reference  time.Time
}

// Cutoff returns the trailing-window cutoff date, if any. Notes dated on
// or before the cutoff are merged; the most recent DaysToKeep days stay
// daily.
func (s PlanSelector) Cutoff() *time.Time {
	if s.DaysToKeep <= 0 {
		return nil
	}
	t := s.Reference.AddDate(0, 0, -s.DaysToKeep)
	return &t
}

// MergePlan is the ordered set of months a merge run will process.
type MergePlan struct {
	Months []string // ascending month keys
	Groups domain.MonthGroups
}

// BuildPlan resolves the selector against the vault. A day-count window
// overrides an explicit month; with no selector every month strictly
// before the reference month is included.
func BuildPlan(repo ports.NoteRepository, sel PlanSelector) (*MergePlan, error) {
	filter := ports.NoteFilter{}
	cutoff := sel.Cutoff()

	switch {
	case cutoff != nil:
		filter.Cutoff = cutoff
	case sel.Month != "":
		if _, err := domain.ParseMonthKey(sel.Month); err != nil {
			return nil, &application.DateFormatError{Value: sel.Month, Want: "YYYY-MM"}
		}
		filter.Month = sel.Month
	}

	groups, err := repo.DiscoverMonths(filter)
	if err != nil {
		return nil, err
	}

	months := groups.SortedKeys()
	if cutoff == nil && sel.Month == "" {
		// Default run: everything up to but excluding the current month.
		// Fixed-width zero-padded keys keep the string compare correct.
		last := domain.PreviousMonthKey(sel.Reference)
		kept := months[:0]
		for _, m := range months {
			if m <= last {
				kept = append(kept, m)
			}
		}
		months = kept
	}

	return &MergePlan{Months: months, Groups: groups}, nil
}
