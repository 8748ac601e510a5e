package aggregating

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mje-dashboard/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBuild_CountsDistinctDocuments(t *testing.T) {
	records := []domain.Record{
		{Category: "A", DocumentNumber: "1", DocumentDate: date(2024, time.January, 5)},
		{Category: "A", DocumentNumber: "1", DocumentDate: date(2024, time.January, 9)},
		{Category: "B", DocumentNumber: "2", DocumentDate: date(2024, time.February, 1)},
	}

	rows := Build(records)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.AggregateRow{Category: "A", Month: 1, Quantity: 1}, rows[0])
	assert.Equal(t, domain.AggregateRow{Category: "B", Month: 2, Quantity: 1}, rows[1])
}

func TestBuild_FirstSeenRepresentativeFields(t *testing.T) {
	records := []domain.Record{
		{Category: "Manual", DocumentNumber: "10", DocumentDate: date(2024, time.March, 2), HeaderText: "", Division: "D1"},
		{Category: "Manual", DocumentNumber: "11", DocumentDate: date(2024, time.March, 3), HeaderText: "Ajuste", Division: "D2"},
		{Category: "Manual", DocumentNumber: "12", DocumentDate: date(2024, time.March, 4), HeaderText: "Estorno", Division: "D3"},
	}

	rows := Build(records)

	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.Equal(t, "Ajuste", rows[0].HeaderText, "primeiro texto de cabeçalho não vazio")
	assert.Equal(t, "D1", rows[0].Division, "primeira divisão na ordem de leitura")
}

func TestBuild_IgnoresEmptyDocumentNumbers(t *testing.T) {
	records := []domain.Record{
		{Category: "A", DocumentNumber: " ", DocumentDate: date(2024, time.May, 1)},
		{Category: "A", DocumentNumber: "", DocumentDate: date(2024, time.May, 2)},
		{Category: "C", DocumentNumber: "", DocumentDate: date(2024, time.May, 2)},
		{Category: "C", DocumentNumber: "7", DocumentDate: date(2024, time.May, 3)},
	}

	rows := Build(records)

	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Quantity)
	assert.Equal(t, 1, rows[1].Quantity)
}

func TestBuild_OrdersByCategoryThenMonth(t *testing.T) {
	records := []domain.Record{
		{Category: "Z", DocumentNumber: "1", DocumentDate: date(2024, time.April, 1)},
		{Category: "A", DocumentNumber: "2", DocumentDate: date(2024, time.June, 1)},
		{Category: "A", DocumentNumber: "3", DocumentDate: date(2024, time.February, 1)},
		{Category: "M", DocumentNumber: "4", DocumentDate: date(2024, time.January, 1)},
	}

	rows := Build(records)

	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, fmt.Sprintf("%s-%d", row.Category, row.Month))
	}
	assert.Equal(t, []string{"A-2", "A-6", "M-1", "Z-4"}, keys)
}

func TestBuild_SameMonthAcrossYearsSharesGroup(t *testing.T) {
	records := []domain.Record{
		{Category: "A", DocumentNumber: "1", DocumentDate: date(2023, time.January, 15)},
		{Category: "A", DocumentNumber: "2", DocumentDate: date(2024, time.January, 15)},
	}

	rows := Build(records)

	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Quantity)
}

func TestBuild_Empty(t *testing.T) {
	rows := Build(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestBuild_InvariantsOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	categories := []string{"Accrual", "Reclass", "Manual", "Provision"}

	records := make([]domain.Record, 0, 500)
	for i := 0; i < 500; i++ {
		records = append(records, domain.Record{
			Category:       categories[rng.Intn(len(categories))],
			DocumentNumber: fmt.Sprintf("%d", rng.Intn(120)),
			DocumentDate:   date(2024, time.Month(rng.Intn(12)+1), rng.Intn(28)+1),
		})
	}

	expectedDocs := make(map[domain.AggregateKey]map[string]struct{})
	for _, record := range records {
		key := domain.AggregateKey{Category: record.Category, Month: record.Month()}
		if expectedDocs[key] == nil {
			expectedDocs[key] = make(map[string]struct{})
		}
		expectedDocs[key][record.DocumentNumber] = struct{}{}
	}

	rows := Build(records)

	assert.Len(t, rows, len(expectedDocs), "uma linha por par (tipo, mês)")
	seen := make(map[domain.AggregateKey]bool)
	for _, row := range rows {
		assert.False(t, seen[row.Key()], "par duplicado: %+v", row.Key())
		seen[row.Key()] = true
		assert.Equal(t, len(expectedDocs[row.Key()]), row.Quantity, "contagem de %+v", row.Key())
	}
}
