package scrape

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/mtbdata/mtb-results/internal/build"
	"github.com/mtbdata/mtb-results/internal/extract"
	"github.com/mtbdata/mtb-results/internal/logger"
	"github.com/mtbdata/mtb-results/internal/record"
)

// PageFetcher retrieves page HTML. Satisfied by *fetch.Fetcher; tests inject
// fakes serving fixture HTML.
type PageFetcher interface {
	Fetch(ctx context.Context, url string, kind extract.PageKind, renderDynamic bool) (string, error)
}

// Failure pairs a fragment's document-order index with the error that kept
// its record from being built.
type Failure struct {
	Index int
	Err   error
}

// page carries the state shared by all three page objects.
type page struct {
	fetcher PageFetcher
	url     string
	dynamic bool
	state   State
	opID    string
}

// State returns the page object's current position in the fetch cycle.
func (p *page) State() State { return p.state }

// run performs the fetch and extract stages, leaving the page object in
// StateBuilding on success.
func (p *page) run(ctx context.Context, kind extract.PageKind) ([]*goquery.Selection, error) {
	p.state = StateFetching
	logger.Debugf("fetching %s page [op=%s]: %s", kind, p.opID, p.url)

	html, err := p.fetcher.Fetch(ctx, p.url, kind, p.dynamic)
	if err != nil {
		p.state = StateFailed
		return nil, err
	}

	p.state = StateExtracting
	fragments, err := extract.Extract(html, kind)
	if err != nil {
		p.state = StateFailed
		return nil, err
	}

	logger.Debugf("extracted %d %s fragments [op=%s]", len(fragments), kind, p.opID)
	p.state = StateBuilding
	return fragments, nil
}

// EventsPage scrapes a season index page into Event records.
type EventsPage struct {
	page
}

// NewEventsPage creates a page object for the events index at url. With
// renderDynamic set, the fetch goes through the browser renderer.
func NewEventsPage(fetcher PageFetcher, url string, renderDynamic bool) *EventsPage {
	return &EventsPage{page{fetcher: fetcher, url: url, dynamic: renderDynamic, opID: uuid.NewString()}}
}

// FetchEvents runs one fresh fetch cycle and returns the events in document
// order plus the per-fragment failures. A fetch-layer error aborts the call;
// no partial sequence is returned alongside it.
func (p *EventsPage) FetchEvents(ctx context.Context) ([]*record.Event, []Failure, error) {
	fragments, err := p.run(ctx, extract.KindEvents)
	if err != nil {
		return nil, nil, err
	}

	events := make([]*record.Event, 0, len(fragments))
	failures := make([]Failure, 0)
	for i, fragment := range fragments {
		evt, err := build.Event(fragment, p.url)
		if err != nil {
			logger.Warnf("skipping event fragment %d [op=%s]: %v", i, p.opID, err)
			failures = append(failures, Failure{Index: i, Err: err})
			continue
		}
		events = append(events, evt)
	}

	p.state = StateDone
	return events, failures, nil
}

// RacesPage scrapes an event's race listing into Race records.
type RacesPage struct {
	page
}

// NewRacesPage creates a page object for the race listing at url.
func NewRacesPage(fetcher PageFetcher, url string, renderDynamic bool) *RacesPage {
	return &RacesPage{page{fetcher: fetcher, url: url, dynamic: renderDynamic, opID: uuid.NewString()}}
}

// FetchRaces runs one fresh fetch cycle and returns the races in document
// order plus the per-fragment failures.
func (p *RacesPage) FetchRaces(ctx context.Context) ([]*record.Race, []Failure, error) {
	fragments, err := p.run(ctx, extract.KindRaces)
	if err != nil {
		return nil, nil, err
	}

	races := make([]*record.Race, 0, len(fragments))
	failures := make([]Failure, 0)
	for i, fragment := range fragments {
		race, err := build.Race(fragment, p.url)
		if err != nil {
			logger.Warnf("skipping race fragment %d [op=%s]: %v", i, p.opID, err)
			failures = append(failures, Failure{Index: i, Err: err})
			continue
		}
		races = append(races, race)
	}

	p.state = StateDone
	return races, failures, nil
}

// ResultsPage scrapes a race's result table into Result records.
type ResultsPage struct {
	page
}

// NewResultsPage creates a page object for the result table at url.
func NewResultsPage(fetcher PageFetcher, url string, renderDynamic bool) *ResultsPage {
	return &ResultsPage{page{fetcher: fetcher, url: url, dynamic: renderDynamic, opID: uuid.NewString()}}
}

// FetchResults runs one fresh fetch cycle and returns the results ordered by
// position ascending with unranked riders (DNF, DSQ) after all ranked ones,
// plus the per-fragment failures.
func (p *ResultsPage) FetchResults(ctx context.Context) ([]*record.Result, []Failure, error) {
	fragments, err := p.run(ctx, extract.KindResults)
	if err != nil {
		return nil, nil, err
	}

	results := make([]*record.Result, 0, len(fragments))
	failures := make([]Failure, 0)
	for i, fragment := range fragments {
		result, err := build.Result(fragment, p.url)
		if err != nil {
			logger.Warnf("skipping result fragment %d [op=%s]: %v", i, p.opID, err)
			failures = append(failures, Failure{Index: i, Err: err})
			continue
		}
		results = append(results, result)
	}

	record.SortResults(results)
	p.state = StateDone
	return results, failures, nil
}
