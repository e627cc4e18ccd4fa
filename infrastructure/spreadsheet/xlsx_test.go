package spreadsheet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

func writeWorkbook(t *testing.T, sheetName string, rows [][]interface{}) string {
	t.Helper()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	require.NoError(t, err)

	for _, values := range rows {
		row := sheet.AddRow()
		for _, v := range values {
			cell := row.AddCell()
			switch val := v.(type) {
			case time.Time:
				cell.SetDate(val)
			case float64:
				cell.SetFloat(val)
			case string:
				cell.SetString(val)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "ventas.xlsx")
	require.NoError(t, file.Save(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, "Ventas", [][]interface{}{
		{"LISTA DE VENTAS"},
		{"fecha", "articulos", "importe_soles"},
		{time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "MOUSE LOGITECH", 45.5},
	})

	opts := defaultOptions()
	records, err := ReadXLSX(path, opts)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 3, records[0].Line)
	assert.Equal(t, "15/03/2024", records[0].Fields[0])
	assert.Equal(t, "MOUSE LOGITECH", records[0].Fields[1])
	assert.Equal(t, "45.5", records[0].Fields[2])
}

func TestReadXLSX_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Ventas", [][]interface{}{{"a"}})

	opts := defaultOptions()
	opts.Sheet = "Resumen"
	_, err := ReadXLSX(path, opts)
	assert.Error(t, err)
}
