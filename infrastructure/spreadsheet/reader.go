package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mje-dashboard/internal/domain"
	"github.com/vfg2006/mje-dashboard/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// Reader converte as linhas de uma aba da planilha em registros do domínio
type Reader struct {
	columns Columns
	sheet   string
}

// NewReader cria um leitor para as colunas informadas. Com sheet vazio, lê a primeira aba.
func NewReader(columns Columns, sheet string) *Reader {
	return &Reader{
		columns: columns,
		sheet:   sheet,
	}
}

// Load abre o arquivo .xlsx e lê todos os registros. Qualquer data inválida falha a carga inteira.
func (r *Reader) Load(path string) ([]domain.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "spreadsheet: erro ao abrir arquivo %s", path)
	}
	defer f.Close()

	records, err := r.readFile(f)
	if err != nil {
		return nil, errors.Wrapf(err, "spreadsheet: erro ao ler arquivo %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(records),
	}).Info("spreadsheet: planilha carregada")

	return records, nil
}

// Read lê os registros de um conteúdo .xlsx
func (r *Reader) Read(in io.Reader) ([]domain.Record, error) {
	f, err := excelize.OpenReader(in)
	if err != nil {
		return nil, errors.Wrap(err, "spreadsheet: erro ao abrir conteúdo")
	}
	defer f.Close()

	return r.readFile(f)
}

func (r *Reader) readFile(f *excelize.File) ([]domain.Record, error) {
	sheet, err := r.resolveSheet(f)
	if err != nil {
		return nil, err
	}

	// Valores brutos para que datas venham como número serial, independente do formato da célula
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler linhas da aba %s", sheet)
	}

	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrEmptySheet, "aba %s", sheet)
	}

	idx, err := r.indexHeader(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		rowNumber := i + 2
		rawDate := cell(row, idx.documentDate)
		documentDate, err := parseCellDate(rawDate)
		if err != nil {
			return nil, &LoadError{
				Err:    errors.Wrap(ErrInvalidDate, err.Error()),
				Row:    rowNumber,
				Column: r.columns.DocumentDate,
				Value:  rawDate,
			}
		}

		records = append(records, domain.Record{
			Category:       cell(row, idx.category),
			DocumentNumber: cell(row, idx.documentNumber),
			DocumentDate:   documentDate,
			HeaderText:     cell(row, idx.headerText),
			Division:       cell(row, idx.division),
		})
	}

	return records, nil
}

func (r *Reader) resolveSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrEmptySheet
	}

	if r.sheet == "" {
		return sheets[0], nil
	}

	for _, name := range sheets {
		if name == r.sheet {
			return name, nil
		}
	}

	return "", errors.Wrapf(ErrSheetNotFound, "aba %q (disponíveis: %s)", r.sheet, strings.Join(sheets, ", "))
}

func (r *Reader) indexHeader(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	missing := make([]string, 0)
	lookup := func(name string) int {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return pos
	}

	idx := columnIndex{
		category:       lookup(r.columns.Category),
		documentNumber: lookup(r.columns.DocumentNumber),
		documentDate:   lookup(r.columns.DocumentDate),
		headerText:     lookup(r.columns.HeaderText),
		division:       lookup(r.columns.Division),
	}

	if len(missing) > 0 {
		return columnIndex{}, errors.Wrapf(ErrMissingColumn, "%s", strings.Join(missing, ", "))
	}

	return idx, nil
}

// maxExcelSerial é o serial de 31/12/9999, última data representável no Excel
const maxExcelSerial = 2958465

// parseCellDate aceita data em texto ou número serial do Excel. Texto é tentado primeiro
// para que datas compactas como 20240105 não virem seriais.
func parseCellDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	date, textErr := utils.ParseDate(value)
	if textErr == nil {
		return date, nil
	}

	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return time.Time{}, textErr
	}
	if serial < 1 || serial >= maxExcelSerial+1 {
		return time.Time{}, fmt.Errorf("serial de data fora do intervalo do Excel: %s", value)
	}
	return excelize.ExcelDateToTime(serial, false)
}

func cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
