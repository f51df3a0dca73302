package main

import (
	"errors"
	"log"
	"os"

	"github.com/lysyi3m/csv-comb/app/cfg"
	"github.com/lysyi3m/csv-comb/app/csvio"
	"github.com/lysyi3m/csv-comb/app/filter"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}
	if appConfig == nil {
		// Help or version was shown, exit gracefully
		return
	}

	log.Printf("Starting CSV date filtering (csv-comb %s)...", appConfig.Version)
	log.Printf("Input file: %s", appConfig.InputFile)
	log.Printf("Output file: %s", appConfig.OutputFile)
	log.Printf("Cutoff date: %s (inclusive)", appConfig.CutoffDate)

	// Cutoff is validated before any file I/O
	cutoff, err := filter.ParseCutoff(appConfig.CutoffDate)
	if err != nil {
		log.Fatalf("Failed to parse cutoff date: %v", err)
	}

	header, rows, err := csvio.ReadAll(appConfig.InputFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Input file not found: %s", appConfig.InputFile)
		}
		log.Fatalf("Failed to read input file: %v", err)
	}

	filterer := filter.NewFilterer(cutoff, appConfig.Debug)
	results, stats := filterer.Run(rows)

	if err := csvio.WriteAll(appConfig.OutputFile, header, filter.KeptRecords(results)); err != nil {
		log.Fatalf("Failed to write output file: %v", err)
	}

	log.Println("Filtering complete")
	log.Printf("Original data rows: %d (excluding header)", stats.Total)
	log.Printf("Kept data rows: %d (excluding header)", stats.Kept)
	log.Printf("Removed data rows: %d", stats.Dropped)
	if stats.Warned > 0 {
		log.Printf("Rows kept with warnings: %d", stats.Warned)
	}
	log.Printf("Output written to %s", appConfig.OutputFile)
}
