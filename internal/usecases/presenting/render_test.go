package presenting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mje-dashboard/internal/domain"
)

var aggregate = []domain.AggregateRow{
	{Category: "A", Month: 1, Quantity: 1, HeaderText: "Ajuste", Division: "D1"},
	{Category: "B", Month: 2, Quantity: 1, HeaderText: "Reclass", Division: "D2"},
}

func TestRender_MonthPresent(t *testing.T) {
	bar, pie, rows := Render(aggregate, 1)

	assert.Equal(t, []domain.AggregateRow{aggregate[0]}, rows)

	require.Len(t, bar.Bars, 1)
	assert.Equal(t, domain.Bar{Category: "A", Quantity: 1, Division: "D1", HeaderText: "Ajuste"}, bar.Bars[0])
	assert.Equal(t, BarTitle, bar.Title)
	assert.Equal(t, BarXLabel, bar.XLabel)
	assert.Equal(t, BarYLabel, bar.YLabel)

	require.Len(t, pie.Slices, 1)
	assert.Equal(t, domain.Slice{Category: "A", Quantity: 1}, pie.Slices[0])
	assert.Equal(t, PieTitle, pie.Title)
}

func TestRender_MonthAbsentIsEmpty(t *testing.T) {
	bar, pie, rows := Render(aggregate, 3)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Empty(t, bar.Bars)
	assert.Empty(t, pie.Slices)
}

func TestRender_PreservesOrderAndFiltersEveryRow(t *testing.T) {
	rows := []domain.AggregateRow{
		{Category: "C", Month: 4, Quantity: 2},
		{Category: "A", Month: 5, Quantity: 7},
		{Category: "A", Month: 4, Quantity: 3},
		{Category: "B", Month: 4, Quantity: 9},
	}

	bar, pie, filtered := Render(rows, 4)

	require.Len(t, filtered, 3)
	for _, row := range filtered {
		assert.Equal(t, domain.Month(4), row.Month)
	}
	assert.Equal(t, "C", bar.Bars[0].Category)
	assert.Equal(t, "A", bar.Bars[1].Category)
	assert.Equal(t, "B", pie.Slices[2].Category)
	assert.Equal(t, 9, pie.Slices[2].Quantity)
}

func TestRender_Idempotent(t *testing.T) {
	bar1, pie1, rows1 := Render(aggregate, 2)
	bar2, pie2, rows2 := Render(aggregate, 2)

	assert.Equal(t, bar1, bar2)
	assert.Equal(t, pie1, pie2)
	assert.Equal(t, rows1, rows2)
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	input := make([]domain.AggregateRow, len(aggregate))
	copy(input, aggregate)

	_, _, rows := Render(input, 1)
	rows[0].Quantity = 42

	assert.Equal(t, aggregate, input)
}
