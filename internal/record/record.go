package record

import (
	"crypto/sha1"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Event represents one multi-race competition instance at a venue.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Disciplines []string  `json:"disciplines"`
	RacesURL    string    `json:"races_url"`
	SourceURL   string    `json:"source_url"`
}

// Race represents one discipline/category/gender race within an Event.
// EventURL is a non-owning back-reference to the parent event page.
type Race struct {
	Discipline string `json:"discipline"`
	Category   string `json:"category"`
	Gender     string `json:"gender"`
	EventURL   string `json:"event_url"`
	ResultsURL string `json:"results_url"`
}

// Segment is a single sub-interval measurement (split, lap, or stage)
// within a Result's total time.
type Segment struct {
	Label string        `json:"label"`
	Time  time.Duration `json:"time"`
}

// Result represents one competitor's outcome in a Race.
//
// Position, Time, Gap, and Points are nil when the source page carries a
// placeholder instead of a value (DNF, DSQ, missing points column). Segments
// preserve source order; their length may legitimately differ between riders.
type Result struct {
	Position *int           `json:"position"`
	Rider    string         `json:"rider"`
	Time     *time.Duration `json:"time"`
	Gap      *time.Duration `json:"gap"`
	Points   *int           `json:"points"`
	Segments []Segment      `json:"segments"`
	RaceURL  string         `json:"race_url"`
}

// GenerateEventID creates a deterministic ID for an event from its stable
// fields. Normalized the same way across runs so the same event always maps
// to the same ID.
func GenerateEventID(name, location string, start time.Time) string {
	normalized := strings.ToLower(strings.TrimSpace(name)) + "|" +
		strings.ToLower(strings.TrimSpace(location)) + "|" +
		start.Format("2006-01-02")

	h := sha1.New()
	h.Write([]byte(normalized))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// NewEvent creates an Event with its ID populated from the stable fields.
func NewEvent(name, location string, start, end time.Time, disciplines []string, racesURL, sourceURL string) *Event {
	return &Event{
		ID:          GenerateEventID(name, location, start),
		Name:        name,
		Location:    location,
		StartDate:   start,
		EndDate:     end,
		Disciplines: disciplines,
		RacesURL:    racesURL,
		SourceURL:   sourceURL,
	}
}

// SortResults orders results by position ascending, placing entries without
// a position (DNF, DSQ) after all ranked entries. The sort is stable, so
// unranked riders keep their source order relative to each other.
func SortResults(results []*Result) {
	sort.SliceStable(results, func(i, j int) bool {
		pi, pj := results[i].Position, results[j].Position
		if pi == nil {
			return false
		}
		if pj == nil {
			return true
		}
		return *pi < *pj
	})
}

// IsRanked reports whether the result carries a finishing position.
func (r *Result) IsRanked() bool {
	return r.Position != nil
}
