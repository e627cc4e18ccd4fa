package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/tealeg/xlsx/v3"
	"github.com/vfg2006/sales-report-api/internal/config"
)

// dayFirstLayout é como as datas do Excel são entregues ao parser de linhas
const dayFirstLayout = "02/01/2006"

// ReadXLSX lê a primeira planilha do arquivo, ou a indicada em opts.Sheet
func ReadXLSX(path string, opts config.Importer) ([]Record, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha %s: %w", path, err)
	}

	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("nenhuma aba encontrada em %s", path)
	}

	sheet := file.Sheets[0]
	if opts.Sheet != "" {
		named, ok := file.Sheet[opts.Sheet]
		if !ok {
			return nil, fmt.Errorf("aba %q não encontrada em %s", opts.Sheet, path)
		}
		sheet = named
	}
	defer sheet.Close()

	records := make([]Record, 0)
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		rowIdx++
		if rowIdx <= opts.SkipRows {
			return nil
		}

		fields := make([]string, sheet.MaxCol)
		for i := range fields {
			fields[i] = cellText(r.GetCell(i), file.Date1904)
		}

		if isBlank(fields) {
			return nil
		}

		records = append(records, Record{Line: rowIdx, Fields: fields})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao percorrer planilha %s: %w", path, err)
	}

	return records, nil
}

func cellText(c *xlsx.Cell, date1904 bool) string {
	if c == nil {
		return ""
	}

	if c.IsTime() {
		if t, err := c.GetTime(date1904); err == nil {
			return t.Format(dayFirstLayout)
		}
	}

	// números vão crus para não carregar separador de milhar
	if c.Type() == xlsx.CellTypeNumeric {
		return strings.TrimSpace(c.Value)
	}

	if s, err := c.FormattedValue(); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(c.String())
}
