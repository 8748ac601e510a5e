package presenting

import (
	"github.com/vfg2006/mje-dashboard/internal/domain"
	"github.com/vfg2006/mje-dashboard/internal/usecases/aggregating"
)

// Presenter define as operações do dashboard usadas pela camada HTTP
type Presenter interface {
	// Options retorna as opções do seletor de mês, em ordem crescente
	Options() []domain.MonthOption

	// DefaultSelection retorna o mês selecionado inicialmente (menor mês com dados)
	DefaultSelection() domain.Month

	// View recalcula os gráficos e a tabela para o mês selecionado
	View(month domain.Month) domain.ViewState

	// Rows retorna as linhas agregadas do mês, ou todas quando month é nil
	Rows(month *domain.Month) []domain.AggregateRow
}

type Dashboard struct {
	table      *aggregating.Table
	yearSuffix string
}

func NewDashboard(table *aggregating.Table, yearSuffix string) *Dashboard {
	return &Dashboard{
		table:      table,
		yearSuffix: yearSuffix,
	}
}

func (d *Dashboard) Options() []domain.MonthOption {
	months := d.table.Months()
	options := make([]domain.MonthOption, 0, len(months))
	for _, month := range months {
		options = append(options, domain.MonthOption{
			Value: month,
			Label: month.Label(d.yearSuffix),
		})
	}
	return options
}

func (d *Dashboard) DefaultSelection() domain.Month {
	month, _ := d.table.DefaultMonth()
	return month
}

// View monta o estado da tela para o mês. Mês inválido (tabela vazia) gera rótulo vazio.
func (d *Dashboard) View(month domain.Month) domain.ViewState {
	bar, pie, rows := Render(d.table.Rows(), month)

	var label string
	if month.Valid() {
		label = month.Label(d.yearSuffix)
	}

	return domain.ViewState{
		Month: month,
		Label: label,
		Bar:   bar,
		Pie:   pie,
		Rows:  rows,
	}
}

func (d *Dashboard) Rows(month *domain.Month) []domain.AggregateRow {
	if month == nil {
		return d.table.Rows()
	}
	return Filter(d.table.Rows(), *month)
}

// Table expõe a tabela agregada para leitura (usada pelo snapshot)
func (d *Dashboard) Table() *aggregating.Table {
	return d.table
}
