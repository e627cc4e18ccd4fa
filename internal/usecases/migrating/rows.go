package migrating

import (
	"strings"

	"github.com/vfg2006/sales-report-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// Colunas da planilha exportada pelo sistema antigo, nesta ordem
const (
	colDate = iota
	colDocumentType
	colDocumentNumber
	colCreditTerm
	colPaymentMethod
	colClientDocument
	colClientName
	colClientPhone
	colNote
	colCurrency
	colArticle
	colExtraData
	colQuantity
	colAmount
	colExchangeRate
	colAmountLocal
	colSalesperson

	columnCount
)

var ColumnNames = [columnCount]string{
	"fecha", "documento", "nro_doc", "cont_cred", "medio_pago", "doc_cliente", "cliente",
	"telefono", "observacion", "moneda", "articulos", "dato_extra", "cantidad", "importe",
	"tc", "importe_soles", "vendedor",
}

// ParseRows converte os registros da planilha. Linhas curtas são completadas e
// colunas extras ignoradas; células vazias ou inválidas ficam nil.
func ParseRows(records []spreadsheet.Record) []domain.ImportRow {
	rows := make([]domain.ImportRow, 0, len(records))

	for _, record := range records {
		var cells [columnCount]string
		copy(cells[:], record.Fields)

		rows = append(rows, domain.ImportRow{
			Line:           record.Line,
			Date:           utils.ParseDayFirst(cells[colDate]),
			DocumentType:   text(cells[colDocumentType]),
			DocumentNumber: text(cells[colDocumentNumber]),
			CreditTerm:     text(cells[colCreditTerm]),
			PaymentMethod:  text(cells[colPaymentMethod]),
			ClientDocument: text(cells[colClientDocument]),
			ClientName:     text(cells[colClientName]),
			ClientPhone:    text(cells[colClientPhone]),
			Note:           text(cells[colNote]),
			Currency:       text(cells[colCurrency]),
			Article:        text(cells[colArticle]),
			ExtraData:      text(cells[colExtraData]),
			Quantity:       utils.ParseDecimal(cells[colQuantity]),
			Amount:         utils.ParseDecimal(cells[colAmount]),
			ExchangeRate:   utils.ParseDecimal(cells[colExchangeRate]),
			AmountLocal:    utils.ParseDecimal(cells[colAmountLocal]),
			Salesperson:    text(cells[colSalesperson]),
		})
	}

	return rows
}

// FilterRows descarta as linhas sem data, artigo, importe em soles ou cliente.
// Retorna as linhas válidas e quantas foram descartadas.
func FilterRows(rows []domain.ImportRow) ([]domain.ImportRow, int) {
	valid := make([]domain.ImportRow, 0, len(rows))

	for _, row := range rows {
		if row.Date == nil || row.Article == nil || row.AmountLocal == nil || row.ClientName == nil {
			continue
		}
		valid = append(valid, row)
	}

	return valid, len(rows) - len(valid)
}

func text(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
