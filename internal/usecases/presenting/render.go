// Package presenting monta os artefatos de visualização do dashboard para um mês selecionado
package presenting

import "github.com/vfg2006/mje-dashboard/internal/domain"

const (
	BarTitle  = "Quantidade por Tipo"
	BarXLabel = "Tipo"
	BarYLabel = "Quantidade"
	PieTitle  = "Distribuição por Tipo"
)

// Filter retorna as linhas do mês informado, preservando a ordem da tabela agregada
func Filter(rows []domain.AggregateRow, month domain.Month) []domain.AggregateRow {
	filtered := make([]domain.AggregateRow, 0)
	for _, row := range rows {
		if row.Month == month {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Render monta o gráfico de barras, o gráfico de pizza e as linhas da tabela para o mês.
// Um mês sem dados produz gráficos e tabela vazios.
func Render(rows []domain.AggregateRow, month domain.Month) (domain.BarSpec, domain.PieSpec, []domain.AggregateRow) {
	filtered := Filter(rows, month)

	bar := domain.BarSpec{
		Title:  BarTitle,
		XLabel: BarXLabel,
		YLabel: BarYLabel,
		Bars:   make([]domain.Bar, 0, len(filtered)),
	}
	pie := domain.PieSpec{
		Title:  PieTitle,
		Slices: make([]domain.Slice, 0, len(filtered)),
	}

	for _, row := range filtered {
		bar.Bars = append(bar.Bars, domain.Bar{
			Category:   row.Category,
			Quantity:   row.Quantity,
			Division:   row.Division,
			HeaderText: row.HeaderText,
		})
		pie.Slices = append(pie.Slices, domain.Slice{
			Category: row.Category,
			Quantity: row.Quantity,
		})
	}

	return bar, pie, filtered
}
