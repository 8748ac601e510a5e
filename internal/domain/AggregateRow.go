package domain

// AggregateRow representa a contagem de documentos distintos por tipo e mês.
// A ordem dos campos segue a ordem das colunas da tabela do dashboard.
type AggregateRow struct {
	Category   string `json:"Nature_new"`
	Month      Month  `json:"Month"`
	Quantity   int    `json:"Quantidade"`
	HeaderText string `json:"Header Text"`
	Division   string `json:"Division"`
}

// AggregateKey identifica um grupo (tipo, mês)
type AggregateKey struct {
	Category string
	Month    Month
}

func (r AggregateRow) Key() AggregateKey {
	return AggregateKey{Category: r.Category, Month: r.Month}
}
