package migrating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/infrastructure/spreadsheet"
)

// row monta um registro com as 17 colunas a partir dos valores informados
func row(line int, values map[int]string) spreadsheet.Record {
	fields := make([]string, columnCount)
	for col, v := range values {
		fields[col] = v
	}
	return spreadsheet.Record{Line: line, Fields: fields}
}

func validRow(line int) spreadsheet.Record {
	return row(line, map[int]string{
		colDate:           "01/03/2024",
		colDocumentType:   "BOLETA",
		colDocumentNumber: "B001-15",
		colClientDocument: "12345678",
		colClientName:     "Juan Pérez",
		colArticle:        "Mouse Logitech M90",
		colQuantity:       "1",
		colAmountLocal:    "25.50",
		colSalesperson:    "ANA",
	})
}

func TestParseRows(t *testing.T) {
	rows := ParseRows([]spreadsheet.Record{validRow(3)})
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 3, r.Line)
	require.NotNil(t, r.Date)
	assert.True(t, r.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Juan Pérez", *r.ClientName)
	assert.Equal(t, "25.5", r.AmountLocal.String())
	assert.Nil(t, r.Amount)
	assert.Nil(t, r.Note)
}

func TestParseRows_ShortAndLongRecords(t *testing.T) {
	short := spreadsheet.Record{Line: 1, Fields: []string{"01/03/2024", "BOLETA"}}
	long := validRow(2)
	long.Fields = append(long.Fields, "extra", "colunas")

	rows := ParseRows([]spreadsheet.Record{short, long})
	require.Len(t, rows, 2)

	assert.NotNil(t, rows[0].Date)
	assert.Nil(t, rows[0].Article)
	assert.Equal(t, "ANA", *rows[1].Salesperson)
}

func TestParseRows_InvalidValuesBecomeNil(t *testing.T) {
	rows := ParseRows([]spreadsheet.Record{row(1, map[int]string{
		colDate:        "sin fecha",
		colQuantity:    "uno",
		colAmountLocal: "S/ 10",
		colClientName:  "   ",
	})})

	assert.Nil(t, rows[0].Date)
	assert.Nil(t, rows[0].Quantity)
	assert.Nil(t, rows[0].AmountLocal)
	assert.Nil(t, rows[0].ClientName)
}

func TestFilterRows(t *testing.T) {
	missingDate := validRow(4)
	missingDate.Fields[colDate] = ""
	missingArticle := validRow(5)
	missingArticle.Fields[colArticle] = ""
	missingAmount := validRow(6)
	missingAmount.Fields[colAmountLocal] = "abc"
	missingClient := validRow(7)
	missingClient.Fields[colClientName] = ""
	missingOptional := validRow(8)
	missingOptional.Fields[colClientDocument] = ""
	missingOptional.Fields[colSalesperson] = ""

	rows := ParseRows([]spreadsheet.Record{
		validRow(3), missingDate, missingArticle, missingAmount, missingClient, missingOptional,
	})

	valid, skipped := FilterRows(rows)

	assert.Equal(t, 4, skipped)
	require.Len(t, valid, 2)
	assert.Equal(t, 3, valid[0].Line)
	assert.Equal(t, 8, valid[1].Line)
}
