package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayFirst(t *testing.T) {
	march15 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	april3 := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected *time.Time
	}{
		{name: "Dia/mês/ano", input: "15/03/2024", expected: &march15},
		{name: "Data ambígua é lida como dia primeiro", input: "03/04/2024", expected: &april3},
		{name: "Sem zeros à esquerda", input: "3/4/2024", expected: &april3},
		{name: "Com horário", input: "15/03/2024 10:30:00", expected: &march15},
		{name: "Com hífen", input: "15-03-2024", expected: &march15},
		{name: "Ano com dois dígitos", input: "15/03/24", expected: &march15},
		{name: "ISO", input: "2024-03-15", expected: &march15},
		{name: "Vazio", input: "  ", expected: nil},
		{name: "Inválido", input: "ayer", expected: nil},
		{name: "Mês inexistente", input: "15/13/2024", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDayFirst(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "esperado %v, obtido %v", tt.expected, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 15, date.Day())

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestParseDecimal(t *testing.T) {
	assert.True(t, ParseDecimal(" 45.50 ").Equal(decimal.RequireFromString("45.5")))
	assert.Nil(t, ParseDecimal(""))
	assert.Nil(t, ParseDecimal("abc"))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, "10.13", RoundWithTwoDecimalPlace(decimal.RequireFromString("10.126")).String())
	assert.True(t, RoundWithTwoDecimalPlace(decimal.Zero).IsZero())
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(10)
	require.NoError(t, err)
	assert.Len(t, id, 10)
}

func TestToNullDecimal(t *testing.T) {
	assert.False(t, ToNullDecimal(nil).Valid)

	d := decimal.RequireFromString("25.50")
	got := ToNullDecimal(&d)
	assert.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(d))
}

func TestTrimToNil(t *testing.T) {
	blank := "   "
	padded := " 12345678 "

	assert.Nil(t, TrimToNil(nil))
	assert.Nil(t, TrimToNil(&blank))
	assert.Equal(t, "12345678", *TrimToNil(&padded))
}
