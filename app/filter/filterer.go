package filter

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// minColumns is the number of fields a row needs for the timestamp
// column to be present.
const minColumns = 7

// timestampColumn is the index of the UPDATED_AT field.
const timestampColumn = 6

// Filterer classifies data rows against an inclusive cutoff date.
// Rows that cannot be confidently classified are kept (fail-open) so
// that ambiguous data is never silently lost.
type Filterer struct {
	cutoff time.Time
	debug  bool
}

func NewFilterer(cutoff time.Time, debug bool) *Filterer {
	return &Filterer{cutoff: cutoff, debug: debug}
}

// Run classifies every data row in input order, logging each warning
// and drop decision. rows holds data rows only; the header is not
// passed in and is never evaluated. Positions in log messages are
// 1-indexed with the header as row 1.
func (f *Filterer) Run(rows [][]string) ([]Result, Stats) {
	results := make([]Result, 0, len(rows))
	stats := Stats{}

	for i, row := range rows {
		result := f.classify(i+2, row)

		stats.Total++
		switch result.Outcome {
		case Drop:
			stats.Dropped++
			log.Printf("Removed %s", result.Reason)
		case KeepShortRow, KeepBadDate:
			stats.Kept++
			stats.Warned++
			log.Printf("Warning: %s", result.Reason)
		default:
			stats.Kept++
			if f.debug {
				log.Printf("Kept row %d", result.Row)
			}
		}

		results = append(results, result)
	}

	return results, stats
}

func (f *Filterer) classify(rowNum int, row []string) Result {
	result := Result{Row: rowNum, Record: row}

	if len(row) < minColumns {
		result.Outcome = KeepShortRow
		result.Reason = fmt.Sprintf("row %d has only %d columns, keeping", rowNum, len(row))
		return result
	}

	raw := strings.TrimSpace(row[timestampColumn])
	rowDate, err := parseRowDate(raw)
	if err != nil {
		result.Outcome = KeepBadDate
		result.Reason = fmt.Sprintf("row %d date parsing failed for %q, keeping", rowNum, raw)
		return result
	}

	if rowDate.After(f.cutoff) {
		result.Outcome = Drop
		result.Reason = fmt.Sprintf("row %d: %s - %v", rowNum, raw, preview(row))
		return result
	}

	result.Outcome = Keep
	return result
}

// preview returns up to the first three fields of a record, used in
// messages about dropped rows.
func preview(row []string) []string {
	if len(row) > 3 {
		return row[:3]
	}
	return row
}

// KeptRecords returns the records that survive filtering, in input
// order.
func KeptRecords(results []Result) [][]string {
	kept := make([][]string, 0, len(results))
	for _, result := range results {
		if result.Kept() {
			kept = append(kept, result.Record)
		}
	}
	return kept
}
