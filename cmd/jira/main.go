package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"rmf-docgen/internal/jira"
	"rmf-docgen/internal/observability"
	"rmf-docgen/internal/table"
)

func main() {
	var (
		in     = flag.String("in", "controls_rev4.csv", "Canonical control table to read")
		outDir = flag.String("out", ".", "Directory for the Jira import CSVs")
	)
	flag.Parse()

	logger := observability.NewLogger("jira")

	controls, err := table.Read(*in)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Error().Str("file", *in).Msg("canonical control table not found; run the fetch step first")
		} else {
			logger.Error().Err(err).Msg("read canonical table failed")
		}
		os.Exit(1)
	}
	if len(controls) == 0 {
		logger.Error().Str("file", *in).Msg("canonical control table is empty; run the fetch step first")
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Fatal().Err(err).Msg("mkdir failed")
	}

	epicsPath := filepath.Join(*outDir, "jira_epics.csv")
	storiesPath := filepath.Join(*outDir, "jira_stories.csv")

	if err := jira.WriteEpics(epicsPath, controls); err != nil {
		logger.Fatal().Err(err).Msg("write epics failed")
	}
	if err := jira.WriteStories(storiesPath, controls); err != nil {
		logger.Fatal().Err(err).Msg("write stories failed")
	}

	// Epics must be imported before stories so Epic Links resolve.
	logger.Info().
		Int("epics", len(controls)).
		Int("stories", 3*len(controls)).
		Str("epics_file", epicsPath).
		Str("stories_file", storiesPath).
		Msg("Jira CSV generation complete; import epics first, then stories")
}
