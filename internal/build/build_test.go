package build

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mtbdata/mtb-results/internal/extract"
	"github.com/mtbdata/mtb-results/internal/normalize"
)

const (
	eventsPageURL  = "https://example.com/results/events?year=2025"
	racesPageURL   = "https://example.com/events/bielsko-biala-2025/races"
	resultsPageURL = "https://example.com/results/bielsko-biala-2025/dhi-elite-women"
)

func loadFragments(t *testing.T, fixture string, kind extract.PageKind) []*goquery.Selection {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + fixture)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	fragments, err := extract.Extract(string(data), kind)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	return fragments
}

func TestBuildEvent(t *testing.T) {
	fragments := loadFragments(t, "sample_events.html", extract.KindEvents)

	evt, err := Event(fragments[0], eventsPageURL)
	if err != nil {
		t.Fatalf("Event failed: %v", err)
	}

	if evt.Name != "Bielsko-Biala" {
		t.Errorf("name = %q", evt.Name)
	}
	if evt.Location != "Bielsko-Biala, Poland" {
		t.Errorf("location = %q", evt.Location)
	}
	wantStart := time.Date(2025, time.May, 16, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.May, 18, 0, 0, 0, 0, time.UTC)
	if !evt.StartDate.Equal(wantStart) || !evt.EndDate.Equal(wantEnd) {
		t.Errorf("dates = %v .. %v", evt.StartDate, evt.EndDate)
	}
	if len(evt.Disciplines) != 2 || evt.Disciplines[0] != "DHI" || evt.Disciplines[1] != "END" {
		t.Errorf("disciplines = %v", evt.Disciplines)
	}
	if evt.RacesURL != "https://example.com/events/bielsko-biala-2025/races" {
		t.Errorf("races url = %q", evt.RacesURL)
	}
	if evt.ID == "" {
		t.Error("event ID should not be empty")
	}
	if evt.SourceURL != eventsPageURL {
		t.Errorf("source url = %q", evt.SourceURL)
	}
}

func TestBuildEventLegacyMarkup(t *testing.T) {
	fragments := loadFragments(t, "sample_events.html", extract.KindEvents)

	// The third card carries no BEM classes; every field goes through a
	// fallback strategy.
	evt, err := Event(fragments[2], eventsPageURL)
	if err != nil {
		t.Fatalf("Event failed on legacy markup: %v", err)
	}
	if evt.Name != "Val di Sole" {
		t.Errorf("name = %q", evt.Name)
	}
	if !evt.StartDate.Equal(evt.EndDate) {
		t.Errorf("single-day event should have start == end, got %v .. %v", evt.StartDate, evt.EndDate)
	}
	if len(evt.Disciplines) != 3 {
		t.Errorf("disciplines = %v", evt.Disciplines)
	}
}

func TestBuildEventMissingURL(t *testing.T) {
	fragments, err := extract.Extract(`<html><body>
		<div class="event-card">
			<h3 class="event-card__title">Nowhere</h3>
			<span class="event-card__location">Nowhere, Atlantis</span>
			<span class="event-card__dates">1 - 2 May 2025</span>
		</div>
	</body></html>`, extract.KindEvents)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	_, err = Event(fragments[0], eventsPageURL)
	var incomplete *IncompleteRecordError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected *IncompleteRecordError, got %v", err)
	}
	if incomplete.Field != "races url" {
		t.Errorf("missing field = %q, want races url", incomplete.Field)
	}
}

func TestBuildRace(t *testing.T) {
	fragments := loadFragments(t, "sample_races.html", extract.KindRaces)

	race, err := Race(fragments[0], racesPageURL)
	if err != nil {
		t.Fatalf("Race failed: %v", err)
	}
	if race.Discipline != "DHI" || race.Category != "Elite" || race.Gender != "Women" {
		t.Errorf("race = %+v", race)
	}
	if race.EventURL != racesPageURL {
		t.Errorf("parent reference = %q", race.EventURL)
	}
	if race.ResultsURL != "https://example.com/results/bielsko-biala-2025/dhi-elite-women" {
		t.Errorf("results url = %q", race.ResultsURL)
	}
}

func TestBuildRaceMissingResultsURL(t *testing.T) {
	fragments := loadFragments(t, "sample_races.html", extract.KindRaces)

	// The fourth row has an empty link cell.
	_, err := Race(fragments[3], racesPageURL)
	var incomplete *IncompleteRecordError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected *IncompleteRecordError, got %v", err)
	}
}

func TestBuildResult(t *testing.T) {
	fragments := loadFragments(t, "sample_results.html", extract.KindResults)

	// Second row in the fixture is the winner.
	result, err := Result(fragments[1], resultsPageURL)
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}

	if result.Position == nil || *result.Position != 1 {
		t.Errorf("position = %v, want 1", result.Position)
	}
	if result.Rider != "Vali Holl" {
		t.Errorf("rider = %q", result.Rider)
	}
	wantTime := 192*time.Second + 480*time.Millisecond
	if result.Time == nil || *result.Time != wantTime {
		t.Errorf("time = %v, want %v", result.Time, wantTime)
	}
	if result.Gap != nil {
		t.Errorf("leader gap = %v, want nil", result.Gap)
	}
	if result.Points == nil || *result.Points != 250 {
		t.Errorf("points = %v, want 250", result.Points)
	}
	if len(result.Segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(result.Segments))
	}
	if result.Segments[0].Label != "Split 1" || result.Segments[2].Label != "Split 3" {
		t.Errorf("segment order not preserved: %v", result.Segments)
	}
	if result.RaceURL != resultsPageURL {
		t.Errorf("parent reference = %q", result.RaceURL)
	}
}

func TestBuildResultDNF(t *testing.T) {
	fragments := loadFragments(t, "sample_results.html", extract.KindResults)

	// Third row: DNF rider with one recorded split and one placeholder.
	result, err := Result(fragments[2], resultsPageURL)
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if result.Position != nil {
		t.Errorf("DNF position = %v, want nil", result.Position)
	}
	if result.Time != nil || result.Points != nil {
		t.Errorf("DNF time/points should be nil, got %v / %v", result.Time, result.Points)
	}
	if len(result.Segments) != 1 {
		t.Errorf("segments = %d, want 1 (placeholder split skipped)", len(result.Segments))
	}
}

func TestBuildResultMissingTrailingSplits(t *testing.T) {
	fragments, err := extract.Extract(`<html><body><table class="results"><tbody>
		<tr class="result-row dhi">
			<td class="result-row__rank">5</td>
			<td class="result-row__rider">Test Rider</td>
			<td class="result-row__time">3:20.000</td>
			<td class="result-row__gap">+7.520</td>
			<td class="result-row__points">140</td>
			<td class="result-row__splits"><div class="splits">
				<span class="split"><span class="split__label">Split 1</span><span class="split__time">49.000</span></span>
				<span class="split"><span class="split__label">Split 2</span><span class="split__time">1:38.000</span></span>
				<span class="split"><span class="split__label">Split 3</span><span class="split__time">2:31.000</span></span>
			</div></td>
		</tr>
	</tbody></table></body></html>`, extract.KindResults)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	// Five splits expected on this track, only three present: the sequence
	// is simply shorter, never an error.
	result, err := Result(fragments[0], resultsPageURL)
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if len(result.Segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(result.Segments))
	}
	for i, want := range []string{"Split 1", "Split 2", "Split 3"} {
		if result.Segments[i].Label != want {
			t.Errorf("segment %d label = %q, want %q", i, result.Segments[i].Label, want)
		}
	}
}

func TestBuildResultMalformedTime(t *testing.T) {
	fragments, err := extract.Extract(`<html><body><table class="results"><tbody>
		<tr class="result-row dhi">
			<td class="result-row__rank">4</td>
			<td class="result-row__rider">Broken Row</td>
			<td class="result-row__time">3:xy.000</td>
			<td class="result-row__gap">—</td>
			<td class="result-row__points">150</td>
		</tr>
	</tbody></table></body></html>`, extract.KindResults)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	_, err = Result(fragments[0], resultsPageURL)
	var formatErr *normalize.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *normalize.FormatError, got %v", err)
	}
}
