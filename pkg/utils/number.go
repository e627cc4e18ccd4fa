package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal converte o texto de uma célula numérica. Retorna nil para
// células vazias ou inválidas.
func ParseDecimal(value string) *decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil
	}

	return &d
}

func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// ToNullDecimal converte um valor opcional para o tipo aceito pelo banco
func ToNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
