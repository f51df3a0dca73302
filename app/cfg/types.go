package cfg

type Cfg struct {
	// Filtering configuration
	InputFile  string
	OutputFile string
	CutoffDate string

	// Application metadata
	Debug   bool
	Version string
}
