// Package filter narrows a scraped race listing to the races a caller cares
// about, by discipline, category, and gender. An empty filter matches every
// race, so callers can apply one unconditionally.
package filter

import (
	"strings"

	"github.com/mtbdata/mtb-results/internal/record"
)

// Filter represents race selection criteria. All string matching is
// case-insensitive; multiple values within one field are OR-ed, and the
// fields themselves are AND-ed.
type Filter struct {
	Disciplines []string
	Categories  []string
	Genders     []string
}

// New creates an empty filter that matches all races.
func New() *Filter {
	return &Filter{}
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.Disciplines) == 0 && len(f.Categories) == 0 && len(f.Genders) == 0
}

// Matches reports whether the race satisfies all active criteria.
func (f *Filter) Matches(race *record.Race) bool {
	return matchesAny(race.Discipline, f.Disciplines) &&
		matchesAny(race.Category, f.Categories) &&
		matchesAny(race.Gender, f.Genders)
}

// Apply returns the races matching the filter, preserving order.
func (f *Filter) Apply(races []*record.Race) []*record.Race {
	if f.IsEmpty() {
		return races
	}
	out := make([]*record.Race, 0, len(races))
	for _, race := range races {
		if f.Matches(race) {
			out = append(out, race)
		}
	}
	return out
}

// matchesAny is true when wanted is empty or value equals one of wanted,
// ignoring case.
func matchesAny(value string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(w)) {
			return true
		}
	}
	return false
}
