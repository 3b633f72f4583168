package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageKind identifies which extraction rule set applies to a page. It is a
// closed set; every switch over PageKind handles all kinds.
type PageKind int

const (
	// KindEvents is the season index listing one card per event.
	KindEvents PageKind = iota
	// KindRaces is an event's race listing, one row per race.
	KindRaces
	// KindResults is a race's result table, one row per rider.
	KindResults
	// KindSplits is the nested block of segment times inside a result row.
	KindSplits
)

func (k PageKind) String() string {
	switch k {
	case KindEvents:
		return "events"
	case KindRaces:
		return "races"
	case KindResults:
		return "results"
	case KindSplits:
		return "splits"
	default:
		return fmt.Sprintf("PageKind(%d)", int(k))
	}
}

// containerSelectors returns the selectors that locate this kind's record
// containers, most specific first. Later entries cover older season markup
// where the expected classes are absent.
func (k PageKind) containerSelectors() []string {
	switch k {
	case KindEvents:
		return []string{"div.event-card", "section.event", "li.event-item"}
	case KindRaces:
		return []string{"table.races tbody tr", "tr.race-row", "ul.race-list li"}
	case KindResults:
		return []string{"table.results tbody tr.result-row", "table.results tbody tr", "tr.result-row"}
	case KindSplits:
		return []string{"div.splits span.split", "ul.splits li", "span.split"}
	default:
		return nil
	}
}

// ReadySelector returns the selector whose presence marks a dynamically
// rendered page of this kind as ready for extraction.
func (k PageKind) ReadySelector() string {
	selectors := k.containerSelectors()
	if len(selectors) == 0 {
		return "body"
	}
	return selectors[0]
}

// Extract parses html and returns the record fragments for the given page
// kind in document order. An empty slice means the page holds no records,
// which is left to the caller to interpret.
func Extract(html string, kind PageKind) ([]*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing %s page: %w", kind, err)
	}
	return find(doc.Selection, kind), nil
}

// Nested returns the sub-fragments of the given kind inside one fragment.
// Used by the result builder to pull split blocks out of a result row; an
// absent block yields an empty slice.
func Nested(fragment *goquery.Selection, kind PageKind) []*goquery.Selection {
	return find(fragment, kind)
}

func find(root *goquery.Selection, kind PageKind) []*goquery.Selection {
	for _, selector := range kind.containerSelectors() {
		matches := root.Find(selector)
		if matches.Length() == 0 {
			continue
		}
		fragments := make([]*goquery.Selection, 0, matches.Length())
		matches.Each(func(_ int, sel *goquery.Selection) {
			fragments = append(fragments, sel)
		})
		return fragments
	}
	return nil
}
