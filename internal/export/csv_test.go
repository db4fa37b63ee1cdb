package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendsight-dev/spendsight/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func labeledTxn(y, m, d int, desc, amount, category string) model.Transaction {
	return model.Transaction{
		Date:        time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Amount:      dec(amount),
		Category:    category,
		DayOfWeek:   time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Weekday().String(),
		MonthName:   time.Month(m).String(),
		Year:        y,
	}
}

func TestWriteTransactions(t *testing.T) {
	txns := []model.Transaction{
		labeledTxn(2024, 1, 1, "Starbucks", "-4.65", "Coffee"),
		labeledTxn(2024, 1, 3, "Amazon", "-25.83", "Shopping"),
		labeledTxn(2024, 1, 2, "Venmo", "80.00", "Transfers"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))

	assert.True(t, strings.HasPrefix(buf.String(), "Date,Day of Week,Month,Year,Description,Transaction Amount,Category"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Most recent first.
	assert.Equal(t, "Amazon", records[1][colDescription])
	assert.Equal(t, "Venmo", records[2][colDescription])
	assert.Equal(t, "Starbucks", records[3][colDescription])

	assert.Equal(t, "01/03/2024", records[1][colDate])
	assert.Equal(t, "-25.83", records[1][colAmount])
	assert.Equal(t, "2024", records[1][colYear])
	assert.Equal(t, "Wednesday", records[1][colDayOfWeek])
	assert.Equal(t, "January", records[1][colMonth])
	assert.Equal(t, "Shopping", records[1][colCategory])
}

func TestWriteTransactions_DoesNotMutateInput(t *testing.T) {
	txns := []model.Transaction{
		labeledTxn(2024, 1, 1, "Starbucks", "-4.65", "Coffee"),
		labeledTxn(2024, 1, 2, "Venmo", "80.00", "Transfers"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))
	assert.Equal(t, "Starbucks", txns[0].Description)
}

func TestMarshalTransaction_AmountFixedPoint(t *testing.T) {
	row := MarshalTransaction(labeledTxn(2024, 1, 1, "ATM", "-40", "Transfers"))
	assert.Equal(t, "-40.00", row[colAmount])
}
