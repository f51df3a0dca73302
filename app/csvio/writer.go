package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteAll writes the header followed by the records to path,
// creating or truncating the file. Each record ends with a newline
// and no blank lines are added.
func WriteAll(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, header)
	rows = append(rows, records...)

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}
