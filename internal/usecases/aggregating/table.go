// Package aggregating contém a agregação dos documentos contábeis por tipo e mês
package aggregating

import (
	"sort"

	"github.com/vfg2006/mje-dashboard/internal/domain"
)

// Table é a tabela agregada, construída uma única vez na inicialização e somente lida depois
type Table struct {
	rows   []domain.AggregateRow
	months []domain.Month
}

// NewTable agrega os registros e retorna a tabela imutável
func NewTable(records []domain.Record) *Table {
	return FromRows(Build(records))
}

// FromRows cria a tabela a partir de linhas já agregadas
func FromRows(rows []domain.AggregateRow) *Table {
	owned := make([]domain.AggregateRow, len(rows))
	copy(owned, rows)

	seen := make(map[domain.Month]struct{})
	months := make([]domain.Month, 0)
	for _, row := range owned {
		if _, ok := seen[row.Month]; ok {
			continue
		}
		seen[row.Month] = struct{}{}
		months = append(months, row.Month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	return &Table{rows: owned, months: months}
}

// Rows retorna uma cópia das linhas agregadas
func (t *Table) Rows() []domain.AggregateRow {
	rows := make([]domain.AggregateRow, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Months retorna os meses presentes na tabela em ordem crescente
func (t *Table) Months() []domain.Month {
	months := make([]domain.Month, len(t.months))
	copy(months, t.months)
	return months
}

// DefaultMonth retorna o menor mês presente na tabela
func (t *Table) DefaultMonth() (domain.Month, bool) {
	if len(t.months) == 0 {
		return 0, false
	}
	return t.months[0], true
}

func (t *Table) Len() int {
	return len(t.rows)
}
