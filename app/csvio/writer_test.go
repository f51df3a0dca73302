package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAll_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	header := []string{"id", "name", "updated_at"}
	records := [][]string{
		{"1", "alpha", "2025-06-01"},
		{"2", "beta", "2025-06-02 10:30:00"},
	}

	if err := WriteAll(path, header, records); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	readHeader, readRows, err := ReadAll(path)
	if err != nil {
		t.Fatalf("Failed to read back output: %v", err)
	}

	if len(readHeader) != 3 || readHeader[2] != "updated_at" {
		t.Errorf("Header not preserved, got %v", readHeader)
	}
	if len(readRows) != 2 {
		t.Fatalf("Expected 2 data rows, got %d", len(readRows))
	}
	if readRows[1][2] != "2025-06-02 10:30:00" {
		t.Errorf("Expected timestamp preserved verbatim, got '%s'", readRows[1][2])
	}
}

func TestWriteAll_TrailingNewlineNoBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	header := []string{"id", "name"}
	records := [][]string{{"1", "alpha"}}

	if err := WriteAll(path, header, records); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	text := string(content)
	if !strings.HasSuffix(text, "\n") {
		t.Error("Output should end with a trailing newline")
	}
	if strings.Contains(text, "\n\n") {
		t.Error("Output should not contain blank lines")
	}
}

func TestWriteAll_QuotesFieldsWithCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	header := []string{"id", "name"}
	records := [][]string{{"1", "alpha, beta"}}

	if err := WriteAll(path, header, records); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, rows, err := ReadAll(path)
	if err != nil {
		t.Fatalf("Failed to read back output: %v", err)
	}
	if rows[0][1] != "alpha, beta" {
		t.Errorf("Expected field with comma preserved, got '%s'", rows[0][1])
	}
}

func TestWriteAll_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	if err := WriteAll(path, []string{"id", "name"}, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	header, rows, err := ReadAll(path)
	if err != nil {
		t.Fatalf("Failed to read back output: %v", err)
	}
	if len(header) != 2 {
		t.Errorf("Expected 2 header fields, got %d", len(header))
	}
	if len(rows) != 0 {
		t.Errorf("Expected no data rows, got %d", len(rows))
	}
}
