package spreadsheet

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/mje-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

// AggregateSheet é o nome da aba gerada na exportação
const AggregateSheet = "Contagem"

// AggregateHeader são as colunas da tabela agregada, na ordem exibida no dashboard
var AggregateHeader = []string{"Nature_new", "Month", "Quantidade", "Header Text", "Division"}

// WriteAggregate escreve as linhas agregadas em um arquivo .xlsx
func WriteAggregate(w io.Writer, rows []domain.AggregateRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AggregateSheet); err != nil {
		return errors.Wrap(err, "spreadsheet: erro ao nomear aba")
	}

	head := make([]any, len(AggregateHeader))
	for i, name := range AggregateHeader {
		head[i] = name
	}
	if err := f.SetSheetRow(AggregateSheet, "A1", &head); err != nil {
		return errors.Wrap(err, "spreadsheet: erro ao escrever cabeçalho")
	}

	for i, row := range rows {
		values := []any{row.Category, int(row.Month), row.Quantity, row.HeaderText, row.Division}
		if err := f.SetSheetRow(AggregateSheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return errors.Wrapf(err, "spreadsheet: erro ao escrever linha %d", i+2)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "spreadsheet: erro ao gerar arquivo")
	}

	return nil
}
