// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Record representa uma linha da planilha de documentos contábeis
type Record struct {
	Category       string    `json:"Nature_new"`
	DocumentNumber string    `json:"Accounting Doc: Number"`
	DocumentDate   time.Time `json:"Accounting Doc: Document Date"`
	HeaderText     string    `json:"Accounting Doc: Header Text"`
	Division       string    `json:"Division"`
}

// Month retorna o mês (1-12) da data do documento
func (r Record) Month() Month {
	return Month(r.DocumentDate.Month())
}
