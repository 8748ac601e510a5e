package domain

import (
	"fmt"
	"time"
)

// Month é o número do mês no calendário (1-12)
type Month int

func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

// Label formata o mês como "Jan/24", usando a abreviação em inglês e o sufixo de ano informado
func (m Month) Label(yearSuffix string) string {
	if !m.Valid() {
		return fmt.Sprintf("%d/%s", int(m), yearSuffix)
	}
	return fmt.Sprintf("%s/%s", time.Month(m).String()[:3], yearSuffix)
}

// MonthOption é uma opção do seletor de mês do dashboard
type MonthOption struct {
	Value Month  `json:"value"`
	Label string `json:"label"`
}
