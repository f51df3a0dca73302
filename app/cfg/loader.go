package cfg

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Filtering configuration
	InputFile  string `long:"input" env:"INPUT_FILE" default:"purchase_history_origin.csv" description:"Input CSV file path"`
	OutputFile string `long:"output" env:"OUTPUT_FILE" default:"purchase_history.csv" description:"Output CSV file path"`
	CutoffDate string `long:"cutoff-date" env:"CUTOFF_DATE" default:"2025-06-04" description:"Inclusive cutoff date (YYYY-MM-DD); rows dated after it are removed"`

	// Application metadata
	Debug       bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	ShowVersion bool `long:"version" description:"Print version and exit"`
}

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.ShowVersion {
		fmt.Println(GetVersion())
		return nil, nil
	}

	cfg := &Cfg{
		InputFile:  raw.InputFile,
		OutputFile: raw.OutputFile,
		CutoffDate: raw.CutoffDate,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	return cfg, nil
}
