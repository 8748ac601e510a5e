package aggregating

import (
	"sort"
	"strings"

	"github.com/vfg2006/mje-dashboard/internal/domain"
)

// group acumula os dados de um par (tipo, mês) durante a agregação
type group struct {
	row       domain.AggregateRow
	documents map[string]struct{}
}

// Build agrupa os registros por (tipo, mês) e conta os documentos distintos de cada grupo.
// Texto de cabeçalho e divisão são os primeiros valores não vazios na ordem de leitura.
// O resultado é ordenado por tipo e depois por mês.
func Build(records []domain.Record) []domain.AggregateRow {
	groups := make(map[domain.AggregateKey]*group)
	keys := make([]domain.AggregateKey, 0)

	for _, record := range records {
		key := domain.AggregateKey{Category: record.Category, Month: record.Month()}

		g, exists := groups[key]
		if !exists {
			g = &group{
				row:       domain.AggregateRow{Category: key.Category, Month: key.Month},
				documents: make(map[string]struct{}),
			}
			groups[key] = g
			keys = append(keys, key)
		}

		if document := strings.TrimSpace(record.DocumentNumber); document != "" {
			g.documents[document] = struct{}{}
		}
		if g.row.HeaderText == "" {
			g.row.HeaderText = record.HeaderText
		}
		if g.row.Division == "" {
			g.row.Division = record.Division
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].Category != keys[j].Category {
			return keys[i].Category < keys[j].Category
		}
		return keys[i].Month < keys[j].Month
	})

	rows := make([]domain.AggregateRow, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		g.row.Quantity = len(g.documents)
		rows = append(rows, g.row)
	}

	return rows
}
