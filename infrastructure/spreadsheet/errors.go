package spreadsheet

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptySheet    = errors.New("planilha sem cabeçalho")
	ErrSheetNotFound = errors.New("aba não encontrada")
	ErrMissingColumn = errors.New("coluna obrigatória ausente")
	ErrInvalidDate   = errors.New("data inválida")
)

// LoadError é um erro de leitura com a posição da célula envolvida
type LoadError struct {
	Err    error  // Erro base
	Row    int    // Linha na planilha (1 é o cabeçalho)
	Column string // Nome da coluna
	Value  string // Valor lido
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: linha %d, coluna %q, valor %q", e.Err.Error(), e.Row, e.Column, e.Value)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
