package main

import (
	"errors"
	"flag"
	"os"

	"rmf-docgen/internal/flowchart"
	"rmf-docgen/internal/observability"
	"rmf-docgen/internal/table"
)

func main() {
	var (
		in  = flag.String("in", "controls_rev4.csv", "Canonical control table to read")
		out = flag.String("out", "rmf_flowchart.mmd", "Mermaid output file")
	)
	flag.Parse()

	logger := observability.NewLogger("flowchart")

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

	if err := flowchart.Write(*out, controls); err != nil {
		logger.Fatal().Err(err).Msg("write flowchart failed")
	}

	logger.Info().
		Int("controls", len(controls)).
		Str("output", *out).
		Msg("RMF flowchart generation complete; view at https://mermaid.live or in any Mermaid-aware viewer")
}
