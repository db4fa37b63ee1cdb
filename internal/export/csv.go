// Package export renders a labeled batch as a downloadable CSV table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spendsight-dev/spendsight/internal/model"
)

const (
	numFields      = 7
	colDate        = 0
	colDayOfWeek   = 1
	colMonth       = 2
	colYear        = 3
	colDescription = 4
	colAmount      = 5
	colCategory    = 6
)

// dateFormat matches the display convention of the table view.
const dateFormat = "01/02/2006"

// header is the exported column order.
var header = []string{"Date", "Day of Week", "Month", "Year", "Description", "Transaction Amount", "Category"}

// WriteTransactions writes labeled rows sorted by date descending (most
// recent first), matching the user-facing display order.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	ordered := make([]model.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[j].Less(ordered[i]) })

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, txn := range ordered {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colDayOfWeek] = txn.DayOfWeek
	row[colMonth] = txn.MonthName
	row[colYear] = strconv.Itoa(txn.Year)
	row[colDescription] = txn.Description
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colCategory] = txn.Category
	return row
}
