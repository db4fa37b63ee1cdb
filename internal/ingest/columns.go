package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendsight-dev/spendsight/internal/model"
)

// Required statement columns. Matching is case-insensitive on trimmed headers.
const (
	ColDate        = "Date"
	ColDescription = "Description"
	ColAmount      = "Transaction Amount"
	ColCategory    = "Category" // optional
)

// ValidationError reports a statement whose header is missing required columns.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("file is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// UnsupportedTypeError reports a file extension with no registered parser.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: supported types are CSV, TSV/TXT, and XLSX", e.Ext)
}

// columnLayout maps header names to field positions for one file.
type columnLayout struct {
	date        int
	description int
	amount      int
	category    int // -1 when absent
}

// resolveColumns validates a header row and returns the field positions.
func resolveColumns(header []string) (columnLayout, error) {
	layout := columnLayout{date: -1, description: -1, amount: -1, category: -1}
	for i, name := range header {
		switch {
		case strings.EqualFold(strings.TrimSpace(name), ColDate):
			layout.date = i
		case strings.EqualFold(strings.TrimSpace(name), ColDescription):
			layout.description = i
		case strings.EqualFold(strings.TrimSpace(name), ColAmount):
			layout.amount = i
		case strings.EqualFold(strings.TrimSpace(name), ColCategory):
			layout.category = i
		}
	}

	var missing []string
	if layout.date < 0 {
		missing = append(missing, ColDate)
	}
	if layout.description < 0 {
		missing = append(missing, ColDescription)
	}
	if layout.amount < 0 {
		missing = append(missing, ColAmount)
	}
	if len(missing) > 0 {
		return columnLayout{}, &ValidationError{Missing: missing}
	}
	return layout, nil
}

// dateFormats are tried in order when parsing the Date column.
var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"2006/01/02",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseAmount accepts plain decimals plus common statement dressing:
// currency symbols, thousands separators, and parentheses for debits.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// rowToTransaction converts one data record to a Transaction. rowIndex is the
// zero-based data row position (header excluded).
func rowToTransaction(rec []string, layout columnLayout, rowIndex int) (model.Transaction, error) {
	date, err := parseDate(rec[layout.date])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := parseAmount(rec[layout.amount])
	if err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		Date:        date,
		Description: strings.TrimSpace(rec[layout.description]),
		Amount:      amount,
		RowIndex:    rowIndex,
	}
	if layout.category >= 0 && layout.category < len(rec) {
		txn.Category = strings.TrimSpace(rec[layout.category])
	}
	return txn, nil
}
