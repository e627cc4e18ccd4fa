package utils

import (
	"strings"
	"time"
)

// dayFirstLayouts são os formatos aceitos na planilha histórica, do mais ao
// menos comum. Datas ambíguas (03/04/2024) são sempre lidas como dia/mês.
var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04:05",
	"2/1/2006 15:04:05",
	"02/01/2006 15:04",
	"2/1/2006 15:04",
	"02-01-2006",
	"2-1-2006",
	"02-01-2006 15:04:05",
	"02/01/06",
	"2/1/06",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDayFirst tenta os formatos dia/mês/ano e ISO. Retorna nil quando nenhum serve.
// O horário, se houver, é descartado.
func ParseDayFirst(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &date
		}
	}

	return nil
}
