package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spendsight-dev/spendsight/internal/model"
)

// DelimitedParser parses CSV-shaped statements with a configurable delimiter.
type DelimitedParser struct {
	Name  string
	Comma rune
}

// Format returns the parser name.
func (p *DelimitedParser) Format() string { return p.Name }

// Parse reads a delimited statement and returns Transactions.
func (p *DelimitedParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = p.Comma
	cr.FieldsPerRecord = -1 // validated against the header below

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p.Name, err)
	}
	return recordsToTransactions(records)
}

// recordsToTransactions validates the header row and converts the rest.
// Shared by the delimited and XLSX parsers.
func recordsToTransactions(records [][]string) ([]model.Transaction, error) {
	if len(records) == 0 {
		return nil, &ValidationError{Missing: []string{ColDate, ColDescription, ColAmount}}
	}

	layout, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		if len(rec) <= layout.amount || len(rec) <= layout.date || len(rec) <= layout.description {
			return nil, fmt.Errorf("row %d: expected at least %d fields, got %d", i+2, len(records[0]), len(rec))
		}
		txn, err := rowToTransaction(rec, layout, i)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
