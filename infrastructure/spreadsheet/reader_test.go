package spreadsheet

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mje-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

var header = []any{
	"Nature_new",
	"Accounting Doc: Number",
	"Accounting Doc: Document Date",
	"Accounting Doc: Header Text",
	"Division",
}

// buildWorkbook monta uma planilha em memória com o cabeçalho e as linhas informadas
func buildWorkbook(t *testing.T, sheet string, head []any, rows ...[]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &head))
	for i, row := range rows {
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReader_Read(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", header,
		[]any{"Accrual", "100200", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), "Provisão", "BR10"},
		[]any{"Accrual", "100200", "2024-01-09", "Provisão", "BR10"},
		[]any{"Reclass", 300400, "02/01/2024", "", "BR20"},
	)

	records, err := NewReader(DefaultColumns(), "").Read(buf)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Accrual", records[0].Category)
	assert.Equal(t, "100200", records[0].DocumentNumber)
	assert.Equal(t, domain.Month(1), records[0].Month())
	assert.Equal(t, 5, records[0].DocumentDate.Day())
	assert.Equal(t, "Provisão", records[0].HeaderText)
	assert.Equal(t, "BR10", records[0].Division)

	assert.Equal(t, 9, records[1].DocumentDate.Day())

	assert.Equal(t, "300400", records[2].DocumentNumber)
	assert.Equal(t, domain.Month(2), records[2].Month())
	assert.Equal(t, "", records[2].HeaderText)
}

func TestReader_ColumnOrderAndExtraColumns(t *testing.T) {
	head := []any{"Division", "Extra", "Accounting Doc: Document Date", "Nature_new", "Accounting Doc: Header Text", "Accounting Doc: Number"}
	buf := buildWorkbook(t, "Sheet1", head,
		[]any{"BR30", "x", "2024-03-15", "Manual", "Ajuste", "9"},
	)

	records, err := NewReader(DefaultColumns(), "").Read(buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.Record{
		Category:       "Manual",
		DocumentNumber: "9",
		DocumentDate:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		HeaderText:     "Ajuste",
		Division:       "BR30",
	}, records[0])
}

func TestReader_SkipsBlankRows(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", header,
		[]any{"Accrual", "1", "2024-01-05", "", ""},
		[]any{"", "", "", "", ""},
		[]any{"Accrual", "2", "2024-01-06", "", ""},
	)

	records, err := NewReader(DefaultColumns(), "").Read(buf)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReader_InvalidDateFailsWholeLoad(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", header,
		[]any{"Accrual", "1", "2024-01-05", "", ""},
		[]any{"Accrual", "2", "não é data", "", ""},
	)

	records, err := NewReader(DefaultColumns(), "").Read(buf)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, ErrInvalidDate))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, 3, loadErr.Row)
	assert.Equal(t, "Accounting Doc: Document Date", loadErr.Column)
	assert.Equal(t, "não é data", loadErr.Value)
}

func TestReader_EmptyDateIsInvalid(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", header,
		[]any{"Accrual", "1", "", "Texto", "BR10"},
	)

	_, err := NewReader(DefaultColumns(), "").Read(buf)
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestReader_MissingColumn(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", []any{"Nature_new", "Accounting Doc: Number", "Division"})

	_, err := NewReader(DefaultColumns(), "").Read(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "Accounting Doc: Document Date")
	assert.Contains(t, err.Error(), "Accounting Doc: Header Text")
}

func TestReader_CustomColumnsAndSheet(t *testing.T) {
	columns := Columns{
		Category:       "Tipo",
		DocumentNumber: "Documento",
		DocumentDate:   "Data",
		HeaderText:     "Texto",
		Division:       "Divisao",
	}
	buf := buildWorkbook(t, "Lancamentos", []any{"Tipo", "Documento", "Data", "Texto", "Divisao"},
		[]any{"Manual", "77", "2024-07-01", "Texto", "BR40"},
	)

	records, err := NewReader(columns, "Lancamentos").Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.Month(7), records[0].Month())

	_, err = NewReader(columns, "Outra").Read(bytes.NewReader(buf.Bytes()))
	assert.True(t, errors.Is(err, ErrSheetNotFound))
}

func TestReader_Load(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", header,
		[]any{"Accrual", "1", "2024-01-05", "", ""},
	)
	path := filepath.Join(t.TempDir(), "tabela.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	records, err := NewReader(DefaultColumns(), "").Load(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = NewReader(DefaultColumns(), "").Load(filepath.Join(t.TempDir(), "inexistente.xlsx"))
	assert.Error(t, err)
}

func TestParseCellDate_Serial(t *testing.T) {
	got, err := parseCellDate("45296")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestReader_CompactTextDate(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", header,
		[]any{"Accrual", "1", "20240105", "", ""},
	)

	records, err := NewReader(DefaultColumns(), "").Read(buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), records[0].DocumentDate)
	assert.Equal(t, domain.Month(1), records[0].Month())
}

func TestParseCellDate_SerialOutOfRange(t *testing.T) {
	for _, value := range []string{"20241301", "2958466", "0", "-3"} {
		_, err := parseCellDate(value)
		assert.Error(t, err, "valor %q deveria falhar", value)
	}
}
