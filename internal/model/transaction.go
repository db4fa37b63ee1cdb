package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one row of bank activity.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = debit, positive = credit
	Category    string          // empty until the engine runs

	// Derived calendar fields, populated by enrich.
	DayOfWeek string
	MonthName string
	Year      int

	// RowIndex is the zero-based position of the row in the source file.
	// It is part of the stable ordering key, so categorization output does
	// not depend on execution order.
	RowIndex int
}

// Less orders transactions by the stable key (date, description, row index).
func (t Transaction) Less(other Transaction) bool {
	if !t.Date.Equal(other.Date) {
		return t.Date.Before(other.Date)
	}
	if t.Description != other.Description {
		return t.Description < other.Description
	}
	return t.RowIndex < other.RowIndex
}
