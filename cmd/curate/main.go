package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/maillist/internal/config"
	"github.com/maillist/internal/contact"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: curate <input.csv> <output_or_stdout>")
		os.Exit(1)
	}

	cfg := config.Load()
	if err := run(cfg, os.Args[1], os.Args[2]); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Error("file not found", "file", os.Args[1])
		} else {
			slog.Error("curation failed", "err", err)
		}
		os.Exit(1)
	}
}

// run is the curator pipeline: read, dedupe, split names, derive
// countries, write.
func run(cfg *config.Config, input, output string) error {
	rows, err := contact.Read(input)
	if err != nil {
		return err
	}

	curated := contact.Dedupe(rows)
	enriched := contact.DeriveCountry(
		contact.SplitNames(slices.Values(curated)),
		cfg.CountryFallback,
	)
	return contact.Write(output, slices.Collect(enriched))
}
