package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mtbdata/mtb-results/internal/calendar"
	"github.com/mtbdata/mtb-results/internal/config"
	"github.com/mtbdata/mtb-results/internal/export"
	"github.com/mtbdata/mtb-results/internal/fetch"
	"github.com/mtbdata/mtb-results/internal/filter"
	"github.com/mtbdata/mtb-results/internal/logger"
	"github.com/mtbdata/mtb-results/internal/record"
	"github.com/mtbdata/mtb-results/internal/scrape"
)

var (
	flagYear        int
	flagOutput      string
	flagConfig      string
	flagDynamic     bool
	flagVerbose     bool
	flagICS         bool
	flagDisciplines []string
	flagCategories  []string
	flagGenders     []string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mtb-results",
		Short: "Scrape UCI MTB World Series results into local JSON files",
		Long: `Scrapes events, races, and results for one season of the UCI MTB
World Series and writes them to a per-event JSON folder tree.`,
		RunE: runScrape,
	}

	cmd.Flags().IntVar(&flagYear, "year", 0, "Season year to scrape (required)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output folder (default: config output_dir)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Config file path")
	cmd.Flags().BoolVar(&flagDynamic, "dynamic", true, "Render the events index in a headless browser")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flagICS, "ics", false, "Also write an .ics calendar entry per event")
	cmd.Flags().StringSliceVar(&flagDisciplines, "discipline", nil, "Only scrape these disciplines (e.g. DHI,XCO)")
	cmd.Flags().StringSliceVar(&flagCategories, "category", nil, "Only scrape these categories (e.g. Elite)")
	cmd.Flags().StringSliceVar(&flagGenders, "gender", nil, "Only scrape these genders")

	cmd.MarkFlagRequired("year")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagVerbose {
		cfg.Logging.Level = "debug"
	}
	if err := logger.Init(cfg.Logging); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	outputDir := cfg.OutputDir
	if flagOutput != "" {
		outputDir = flagOutput
	}
	writer, err := export.New(outputDir)
	if err != nil {
		return err
	}

	raceFilter := &filter.Filter{
		Disciplines: flagDisciplines,
		Categories:  flagCategories,
		Genders:     flagGenders,
	}

	renderer := fetch.NewBrowserRenderer(cfg.Render.Headless, cfg.Render.Timeout)
	fetcher := fetch.NewWithClient(&http.Client{Timeout: cfg.RequestTimeout}, renderer)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The events index is script-generated, so it defaults to the browser
	// path; race listings and result tables are served as plain HTML.
	logger.Infof("extracting events for %d", flagYear)
	events, failures, err := scrape.NewEventsPage(fetcher, cfg.EventsURL(flagYear), flagDynamic).FetchEvents(ctx)
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}
	reportFailures("event", failures)

	type enriched struct {
		event *record.Event
		races []*record.Race
	}

	enrichedEvents := make([]enriched, 0, len(events))
	totalRaces := 0
	for _, evt := range events {
		logger.Infof("extracting race info for %s", evt.Location)
		races, failures, err := scrape.NewRacesPage(fetcher, evt.RacesURL, false).FetchRaces(ctx)
		if err != nil {
			return fmt.Errorf("fetching races for %s: %w", evt.Location, err)
		}
		reportFailures("race", failures)

		races = raceFilter.Apply(races)
		enrichedEvents = append(enrichedEvents, enriched{event: evt, races: races})
		totalRaces += len(races)
	}

	bar := progressbar.Default(int64(totalRaces), "scraping results")
	for num, ee := range enrichedEvents {
		eventNum := num + 1

		if err := writer.WriteEvent(flagYear, eventNum, ee.event, ee.races); err != nil {
			return err
		}
		if flagICS {
			icsPath := filepath.Join(writer.EventDir(flagYear, eventNum, ee.event), "event.ics")
			if err := os.WriteFile(icsPath, []byte(calendar.GenerateICS(ee.event)), 0644); err != nil {
				return fmt.Errorf("writing calendar entry: %w", err)
			}
		}

		for _, race := range ee.races {
			// Skip races already scraped on a previous run.
			if _, err := os.Stat(writer.RaceFile(flagYear, eventNum, ee.event, race)); err == nil {
				bar.Add(1)
				continue
			}

			results, failures, err := scrape.NewResultsPage(fetcher, race.ResultsURL, false).FetchResults(ctx)
			if err != nil {
				return fmt.Errorf("fetching results for %s %s: %w", ee.event.Location, race.Discipline, err)
			}
			reportFailures("result", failures)

			if err := writer.WriteRaceResults(flagYear, eventNum, ee.event, race, results); err != nil {
				return err
			}
			bar.Add(1)
		}
	}

	logger.Infof("scraped %d events, %d races", len(enrichedEvents), totalRaces)
	return nil
}

func reportFailures(kind string, failures []scrape.Failure) {
	for _, f := range failures {
		logger.Warnf("%s fragment %d skipped: %v", kind, f.Index, f.Err)
	}
}
