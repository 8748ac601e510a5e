package domain

// Bar é uma barra do gráfico de quantidade por tipo, com os dados exibidos no hover
type Bar struct {
	Category   string `json:"category"`
	Quantity   int    `json:"quantity"`
	Division   string `json:"division"`
	HeaderText string `json:"header_text"`
}

type BarSpec struct {
	Title  string `json:"title"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
	Bars   []Bar  `json:"bars"`
}

// Slice é uma fatia do gráfico de distribuição por tipo
type Slice struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type PieSpec struct {
	Title  string  `json:"title"`
	Slices []Slice `json:"slices"`
}

// ViewState é o conjunto de artefatos recalculado a cada seleção de mês
type ViewState struct {
	Month Month          `json:"month"`
	Label string         `json:"label"`
	Bar   BarSpec        `json:"bar"`
	Pie   PieSpec        `json:"pie"`
	Rows  []AggregateRow `json:"rows"`
}

// AvailableMonths representa os meses disponíveis no seletor do dashboard
type AvailableMonths struct {
	Options []MonthOption `json:"options"`
	Default Month         `json:"default"`
}
