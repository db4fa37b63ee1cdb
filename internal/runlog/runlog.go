// Package runlog keeps a CSV audit trail of categorization runs.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp      time.Time
	SourceFile     string
	Rows           int
	VocabularySize int
	Uncategorized  int
	Fingerprint    string
}

// Header is the CSV header for the run log.
const Header = "timestamp,source_file,rows,vocabulary_size,uncategorized,fingerprint"

const (
	numFields       = 6
	colTimestamp    = 0
	colSourceFile   = 1
	colRows         = 2
	colVocabSize    = 3
	colUncategorize = 4
	colFingerprint  = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSourceFile] = e.SourceFile
	row[colRows] = strconv.Itoa(e.Rows)
	row[colVocabSize] = strconv.Itoa(e.VocabularySize)
	row[colUncategorize] = strconv.Itoa(e.Uncategorized)
	row[colFingerprint] = e.Fingerprint
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	rows, err := strconv.Atoi(record[colRows])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows %q: %w", record[colRows], err)
	}
	vocabSize, err := strconv.Atoi(record[colVocabSize])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing vocabulary_size %q: %w", record[colVocabSize], err)
	}
	uncat, err := strconv.Atoi(record[colUncategorize])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing uncategorized %q: %w", record[colUncategorize], err)
	}

	return Entry{
		Timestamp:      ts,
		SourceFile:     record[colSourceFile],
		Rows:           rows,
		VocabularySize: vocabSize,
		Uncategorized:  uncat,
		Fingerprint:    record[colFingerprint],
	}, nil
}

// Append writes entries to the log at path, creating the file and header if needed.
func Append(path string, entries []Entry) error {
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	return cw.Error()
}

// Read returns all entries from the log at path. Returns an empty slice if
// the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
