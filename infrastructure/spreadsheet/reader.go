// Package spreadsheet lê a planilha histórica de vendas (CSV ou XLSX) como
// registros de texto, sem interpretar as colunas.
package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vfg2006/sales-report-api/internal/config"
)

// Record é uma linha não vazia da planilha. Line é a posição na planilha, a partir de 1.
type Record struct {
	Line   int
	Fields []string
}

// Read carrega o arquivo escolhendo o leitor pela extensão
func Read(path string, opts config.Importer) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(path, opts)
	case ".csv", ".txt":
		return ReadCSVFile(path, opts)
	default:
		return nil, fmt.Errorf("formato de arquivo não suportado: %s", path)
	}
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
