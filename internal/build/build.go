package build

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mtbdata/mtb-results/internal/extract"
	"github.com/mtbdata/mtb-results/internal/normalize"
	"github.com/mtbdata/mtb-results/internal/record"
)

// Event builds an Event record from one event-card fragment. pageURL is the
// URL the fragment was extracted from; relative links resolve against it.
func Event(fragment *goquery.Selection, pageURL string) (*record.Event, error) {
	racesHref, ok := extract.First(fragment,
		extract.Attr("a.event-card__link", "href"),
		extract.Attr("a", "href"),
	)
	if !ok {
		return nil, &IncompleteRecordError{Record: "event", Field: "races url"}
	}
	racesURL, err := resolveURL(pageURL, racesHref)
	if err != nil {
		return nil, fmt.Errorf("event races url: %w", err)
	}

	name, ok := extract.First(fragment,
		extract.Text(".event-card__title"),
		extract.Text("h3"),
		extract.Text("h2"),
	)
	if !ok {
		return nil, &IncompleteRecordError{Record: "event", Field: "name"}
	}

	location, ok := extract.First(fragment,
		extract.Text(".event-card__location"),
		extract.Text(".location"),
	)
	if !ok {
		return nil, &IncompleteRecordError{Record: "event", Field: "location"}
	}

	dateText, ok := extract.First(fragment,
		extract.Text(".event-card__dates"),
		extract.Text(".dates"),
		extract.Text("time"),
	)
	if !ok {
		return nil, &IncompleteRecordError{Record: "event", Field: "dates"}
	}
	start, end, err := normalize.ParseDateRange(dateText)
	if err != nil {
		return nil, fmt.Errorf("event dates: %w", err)
	}

	return record.NewEvent(name, location, start, end, disciplines(fragment), racesURL, pageURL), nil
}

// disciplines reads the ordered discipline list. Absence is not an error;
// some season pages omit the list on the index.
func disciplines(fragment *goquery.Selection) []string {
	out := make([]string, 0, 4)
	for _, selector := range []string{".event-card__disciplines li", ".disciplines li"} {
		fragment.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				out = append(out, text)
			}
		})
		if len(out) > 0 {
			return out
		}
	}
	// Fallback: a comma-separated single element.
	if text, ok := extract.First(fragment, extract.Text(".event-card__disciplines"), extract.Text(".disciplines")); ok {
		for _, part := range strings.Split(text, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Race builds a Race record from one race-listing row. eventURL becomes the
// race's parent back-reference.
func Race(fragment *goquery.Selection, eventURL string) (*record.Race, error) {
	resultsHref, ok := extract.First(fragment,
		extract.Attr("td.race-row__link a", "href"),
		extract.Attr("a", "href"),
	)
	if !ok {
		return nil, &IncompleteRecordError{Record: "race", Field: "results url"}
	}
	resultsURL, err := resolveURL(eventURL, resultsHref)
	if err != nil {
		return nil, fmt.Errorf("race results url: %w", err)
	}

	discipline, ok := extract.First(fragment,
		extract.Text(".race-row__discipline"),
		extract.CellText(0),
	)
	if !ok {
		return nil, &IncompleteRecordError{Record: "race", Field: "discipline"}
	}

	// Category and gender are absent from some one-class race listings;
	// the record stays usable without them.
	category, _ := extract.First(fragment,
		extract.Text(".race-row__category"),
		extract.CellText(1),
	)
	gender, _ := extract.First(fragment,
		extract.Text(".race-row__gender"),
		extract.CellText(2),
	)

	return &record.Race{
		Discipline: discipline,
		Category:   category,
		Gender:     gender,
		EventURL:   eventURL,
		ResultsURL: resultsURL,
	}, nil
}

// Result builds a Result record from one result row, including the nested
// segment times. raceURL becomes the result's parent back-reference.
func Result(fragment *goquery.Selection, raceURL string) (*record.Result, error) {
	rider, ok := extract.First(fragment,
		extract.Text(".result-row__rider"),
		extract.CellText(1),
	)
	if !ok {
		return nil, &IncompleteRecordError{Record: "result", Field: "rider"}
	}

	positionText, _ := extract.First(fragment,
		extract.Text(".result-row__rank"),
		extract.CellText(0),
	)
	position, err := normalize.ParseInteger(positionText)
	if err != nil {
		return nil, fmt.Errorf("result position: %w", err)
	}
	if position != nil && *position <= 0 {
		return nil, &normalize.FormatError{Value: positionText, Reason: "position must be positive"}
	}

	timeText, _ := extract.First(fragment,
		extract.Text(".result-row__time"),
		extract.CellText(2),
	)
	total, err := normalize.ParseDuration(timeText)
	if err != nil {
		return nil, fmt.Errorf("result time: %w", err)
	}

	gapText, _ := extract.First(fragment,
		extract.Text(".result-row__gap"),
		extract.CellText(3),
	)
	gap, err := normalize.ParseDuration(gapText)
	if err != nil {
		return nil, fmt.Errorf("result gap: %w", err)
	}

	pointsText, _ := extract.First(fragment,
		extract.Text(".result-row__points"),
		extract.CellText(4),
	)
	points, err := normalize.ParseInteger(pointsText)
	if err != nil {
		return nil, fmt.Errorf("result points: %w", err)
	}

	return &record.Result{
		Position: position,
		Rider:    rider,
		Time:     total,
		Gap:      gap,
		Points:   points,
		Segments: segments(fragment),
		RaceURL:  raceURL,
	}, nil
}

// segments extracts the nested split/lap/stage times in source order. A
// missing splits block or a split with placeholder text shortens the
// sequence; it never fails the record.
func segments(fragment *goquery.Selection) []record.Segment {
	fragments := extract.Nested(fragment, extract.KindSplits)
	out := make([]record.Segment, 0, len(fragments))
	for i, frag := range fragments {
		timeText, ok := extract.First(frag,
			extract.Text(".split__time"),
			extract.OwnText(),
		)
		if !ok {
			continue
		}
		d, err := normalize.ParseDuration(timeText)
		if err != nil || d == nil {
			continue
		}

		label, ok := extract.First(frag, extract.Text(".split__label"))
		if !ok {
			label = fmt.Sprintf("Split %d", i+1)
		}
		out = append(out, record.Segment{Label: label, Time: *d})
	}
	return out
}

func resolveURL(base, href string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	resolved, err := baseURL.Parse(href)
	if err != nil {
		return "", err
	}
	return resolved.String(), nil
}
