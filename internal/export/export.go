// Package export writes scraped records to a per-season JSON folder tree:
//
//	<base>/<year>/<NN>_<location>/event.json
//	<base>/<year>/<NN>_<location>/results/<discipline>/<race>.json
//
// It is a downstream consumer of the core's record sequences; the core
// itself never persists anything. Dates are serialized as ISO 8601 days and
// durations in the canonical H:MM:SS.sss form so the files are readable
// without this codebase.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mtbdata/mtb-results/internal/normalize"
	"github.com/mtbdata/mtb-results/internal/record"
)

// Writer persists records under a base directory.
type Writer struct {
	baseDir string
}

// New creates a Writer rooted at baseDir, creating it if needed. A leading
// "~/" expands to the user's home directory.
func New(baseDir string) (*Writer, error) {
	if strings.HasPrefix(baseDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		baseDir = filepath.Join(home, baseDir[2:])
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

var slugPattern = regexp.MustCompile(`[\s\-–—]+`)

// Slug normalizes a name for use in file and directory names.
func Slug(name string) string {
	s := strings.ReplaceAll(name, ",", "")
	s = slugPattern.ReplaceAllString(strings.TrimSpace(s), "_")
	return strings.ToLower(s)
}

// EventDir returns the directory for the num-th event of a season.
func (w *Writer) EventDir(year, num int, evt *record.Event) string {
	return filepath.Join(w.baseDir, fmt.Sprintf("%d", year), fmt.Sprintf("%02d_%s", num, Slug(evt.Location)))
}

// RaceFile returns the results file path for one race of an event.
func (w *Writer) RaceFile(year, num int, evt *record.Event, race *record.Race) string {
	name := Slug(fmt.Sprintf("%s_%s_%s", race.Discipline, race.Gender, race.Category))
	return filepath.Join(w.EventDir(year, num, evt), "results", Slug(race.Discipline), name+".json")
}

// WriteEvent writes the event.json document holding the event and its race
// listing.
func (w *Writer) WriteEvent(year, num int, evt *record.Event, races []*record.Race) error {
	doc := eventDoc{
		ID:          evt.ID,
		Name:        evt.Name,
		Location:    evt.Location,
		StartDate:   evt.StartDate.Format("2006-01-02"),
		EndDate:     evt.EndDate.Format("2006-01-02"),
		Disciplines: evt.Disciplines,
		RacesURL:    evt.RacesURL,
		Races:       races,
	}
	path := filepath.Join(w.EventDir(year, num, evt), "event.json")
	return writeJSON(path, doc)
}

// WriteRaceResults writes one race's result document.
func (w *Writer) WriteRaceResults(year, num int, evt *record.Event, race *record.Race, results []*record.Result) error {
	docs := make([]resultDoc, 0, len(results))
	for _, r := range results {
		docs = append(docs, newResultDoc(r))
	}
	doc := raceDoc{
		Event:      evt.Location,
		Discipline: race.Discipline,
		Category:   race.Category,
		Gender:     race.Gender,
		ResultsURL: race.ResultsURL,
		Results:    docs,
	}
	return writeJSON(w.RaceFile(year, num, evt, race), doc)
}

func writeJSON(path string, doc interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

type eventDoc struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Disciplines []string       `json:"disciplines"`
	RacesURL    string         `json:"races_url"`
	Races       []*record.Race `json:"races"`
}

type raceDoc struct {
	Event      string      `json:"event"`
	Discipline string      `json:"discipline"`
	Category   string      `json:"category"`
	Gender     string      `json:"gender"`
	ResultsURL string      `json:"results_url"`
	Results    []resultDoc `json:"results"`
}

type resultDoc struct {
	Position *int         `json:"position"`
	Rider    string       `json:"rider"`
	Time     *string      `json:"time"`
	Gap      *string      `json:"gap"`
	Points   *int         `json:"points"`
	Segments []segmentDoc `json:"segments"`
}

type segmentDoc struct {
	Label string `json:"label"`
	Time  string `json:"time"`
}

func newResultDoc(r *record.Result) resultDoc {
	doc := resultDoc{
		Position: r.Position,
		Rider:    r.Rider,
		Points:   r.Points,
		Segments: make([]segmentDoc, 0, len(r.Segments)),
	}
	if r.Time != nil {
		t := normalize.FormatDuration(*r.Time)
		doc.Time = &t
	}
	if r.Gap != nil {
		g := normalize.FormatDuration(*r.Gap)
		doc.Gap = &g
	}
	for _, s := range r.Segments {
		doc.Segments = append(doc.Segments, segmentDoc{Label: s.Label, Time: normalize.FormatDuration(s.Time)})
	}
	return doc
}
