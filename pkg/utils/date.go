package utils

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts são os formatos aceitos para datas em texto, na ordem de tentativa.
// Datas com barra seguem a convenção mês/dia/ano.
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"01/02/2006 15:04:05",
	"1/2/2006",
	"01-02-06",
	"20060102",
}

// ParseDate converte uma data em texto usando os formatos conhecidos
func ParseDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", value)
}
