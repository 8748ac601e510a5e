// Package spreadsheet lê a planilha de documentos contábeis e exporta a tabela agregada em .xlsx
package spreadsheet

// Columns mapeia os campos do registro para os nomes das colunas no cabeçalho da planilha
type Columns struct {
	Category       string
	DocumentNumber string
	DocumentDate   string
	HeaderText     string
	Division       string
}

// DefaultColumns são os cabeçalhos do relatório de lançamentos manuais
func DefaultColumns() Columns {
	return Columns{
		Category:       "Nature_new",
		DocumentNumber: "Accounting Doc: Number",
		DocumentDate:   "Accounting Doc: Document Date",
		HeaderText:     "Accounting Doc: Header Text",
		Division:       "Division",
	}
}

// columnIndex guarda a posição de cada coluna no cabeçalho
type columnIndex struct {
	category       int
	documentNumber int
	documentDate   int
	headerText     int
	division       int
}
