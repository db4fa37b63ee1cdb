package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Date,Description,Transaction Amount
1/1/2024,Starbucks,-4.65
1/2/2024,Trader Joe's,-55.79
1/3/2024,Venmo,80.00
`

func TestCSVParse(t *testing.T) {
	p := &DelimitedParser{Name: "csv", Comma: ','}
	txns, err := p.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "Starbucks", txns[0].Description)
	assert.Equal(t, "-4.65", txns[0].Amount.String())
	assert.Equal(t, 2024, txns[0].Date.Year())
	assert.Equal(t, 0, txns[0].RowIndex)
	assert.Equal(t, 2, txns[2].RowIndex)
	assert.Empty(t, txns[0].Category)
}

func TestCSVParse_OptionalCategory(t *testing.T) {
	in := "Date,Description,Transaction Amount,Category\n2024-01-05,ATM,-40.00,Cash\n"
	p := &DelimitedParser{Name: "csv", Comma: ','}
	txns, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Cash", txns[0].Category)
}

func TestCSVParse_HeaderCaseInsensitive(t *testing.T) {
	in := "date, DESCRIPTION ,transaction amount\n2024-01-05,ATM,-40.00\n"
	p := &DelimitedParser{Name: "csv", Comma: ','}
	txns, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)
}

func TestCSVParse_MissingColumns(t *testing.T) {
	in := "Date,Memo\n2024-01-05,ATM\n"
	p := &DelimitedParser{Name: "csv", Comma: ','}
	_, err := p.Parse(strings.NewReader(in))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{ColDescription, ColAmount}, verr.Missing)
}

func TestCSVParse_AmountDressing(t *testing.T) {
	in := "Date,Description,Transaction Amount\n2024-01-05,Rent,\"($1,250.00)\"\n"
	p := &DelimitedParser{Name: "csv", Comma: ','}
	txns, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "-1250", txns[0].Amount.String())
}

func TestCSVParse_BadDate(t *testing.T) {
	in := "Date,Description,Transaction Amount\nnot-a-date,ATM,-40.00\n"
	p := &DelimitedParser{Name: "csv", Comma: ','}
	_, err := p.Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestTSVParse(t *testing.T) {
	in := "Date\tDescription\tTransaction Amount\n2024-01-05\tATM\t-40.00\n"
	p := &DelimitedParser{Name: "tsv", Comma: '\t'}
	txns, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "ATM", txns[0].Description)
}

func TestXLSXParse(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	rows := [][]any{
		{"Date", "Description", "Transaction Amount"},
		{"2024-01-05", "Starbucks", "-4.65"},
		{"2024-01-06", "Amazon.com", "-25.83"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))

	p := &XLSXParser{}
	txns, err := p.Parse(&buf)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "Starbucks", txns[0].Description)
	assert.Equal(t, "Amazon.com", txns[1].Description)
}

func TestParseFile_ByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	txns, err := ParseFile(DefaultRegistry(), path)
	require.NoError(t, err)
	assert.Len(t, txns, 3)
}

func TestParseFile_TxtIsTabSeparated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.txt")
	in := "Date\tDescription\tTransaction Amount\n2024-01-05\tATM\t-40.00\n"
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

	txns, err := ParseFile(DefaultRegistry(), path)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestParseFile_UnsupportedType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	_, err := ParseFile(DefaultRegistry(), path)
	var uerr *UnsupportedTypeError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ".pdf", uerr.Ext)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&DelimitedParser{Name: "csv", Comma: ','})
	assert.Panics(t, func() {
		r.Register(&DelimitedParser{Name: "CSV", Comma: ','})
	})
}
