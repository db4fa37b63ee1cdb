// Package enrich derives calendar display fields from transaction dates.
package enrich

import "github.com/spendsight-dev/spendsight/internal/model"

// Apply fills DayOfWeek, MonthName, and Year from the transaction date.
// Pure and total: every valid date enriches without error.
func Apply(txn model.Transaction) model.Transaction {
	txn.DayOfWeek = txn.Date.Weekday().String()
	txn.MonthName = txn.Date.Month().String()
	txn.Year = txn.Date.Year()
	return txn
}

// ApplyAll enriches every transaction, returning a copy.
func ApplyAll(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, t := range txns {
		out[i] = Apply(t)
	}
	return out
}
