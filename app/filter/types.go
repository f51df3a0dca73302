package filter

// Outcome classifies a single data row against the cutoff date.
type Outcome int

const (
	// Keep means the row date parsed and is on or before the cutoff.
	Keep Outcome = iota
	// Drop means the row date parsed and is after the cutoff.
	Drop
	// KeepShortRow means the row has too few columns to hold a
	// timestamp; kept per the fail-open policy.
	KeepShortRow
	// KeepBadDate means the timestamp field did not parse; kept per
	// the fail-open policy.
	KeepBadDate
)

// Result pairs a data row with its classification. Row is the
// 1-indexed position in the input file, where the header is row 1.
type Result struct {
	Row     int
	Record  []string
	Outcome Outcome
	Reason  string
}

// Kept reports whether the record survives filtering.
func (r Result) Kept() bool {
	return r.Outcome != Drop
}

// Stats holds counters accumulated during the filtering pass. Total
// always equals Kept + Dropped; Warned counts the fail-open subset of
// Kept.
type Stats struct {
	Total   int
	Kept    int
	Dropped int
	Warned  int
}
