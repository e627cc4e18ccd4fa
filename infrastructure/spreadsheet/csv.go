package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
)

func ReadCSVFile(path string, opts config.Importer) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo %s: %w", path, err)
	}

	return ParseCSV(data, opts)
}

// ParseCSV decodifica e lê o CSV, descartando as opts.SkipRows primeiras linhas
// do arquivo (vazias inclusive) e as linhas em branco
func ParseCSV(data []byte, opts config.Importer) ([]Record, error) {
	decoded, detected, err := Decode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("CSV decodificado como %s", detected)

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Delimiter != "" {
		reader.Comma = []rune(opts.Delimiter)[0]
	}

	records := make([]Record, 0)
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler CSV: %w", err)
		}

		// o csv.Reader não devolve linhas vazias, então o descarte do
		// cabeçalho conta linhas físicas do arquivo e não registros
		line, _ := reader.FieldPos(0)
		if line <= opts.SkipRows {
			continue
		}

		if isBlank(fields) {
			continue
		}

		records = append(records, Record{Line: line, Fields: fields})
	}

	return records, nil
}
