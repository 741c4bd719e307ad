package tabular_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/custos-app/custos-backend/internal/utils/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	csv := "MA ,TRANSDATE,AMOUNTMST,Descrição Conta\n" +
		"Manutenção,2025-01-15,100.50,Pecas\n" +
		"Producao,2025-01-16,\"200\",Insumos\n"

	tabela, err := tabular.Parse("custos.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, tabela.Len())
	assert.True(t, tabela.HasColumn("MA"), "headers should be trimmed")
	assert.True(t, tabela.HasColumn("Descrição Conta"))
	assert.False(t, tabela.HasColumn("Fornecedor"))
	assert.Equal(t, "Manutenção", tabela.Cell(0, "MA"))
	assert.Equal(t, "200", tabela.Cell(1, "AMOUNTMST"))
	assert.Equal(t, "", tabela.Cell(0, "Inexistente"))
}

func TestParseCSVRaggedRows(t *testing.T) {
	csv := "MA,TRANSDATE,AMOUNTMST\nSetor,2025-02-01\n"

	tabela, err := tabular.Parse("custos.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, tabela.Len())
	assert.Equal(t, "", tabela.Cell(0, "AMOUNTMST"), "short rows are padded")
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"MA", "TRANSDATE", "AMOUNTMST"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"Oficina", "2025-03-10", "42.00"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tabela, err := tabular.Parse("planilha.xlsx", &buf)
	require.NoError(t, err)

	assert.Equal(t, 1, tabela.Len())
	assert.Equal(t, "Oficina", tabela.Cell(0, "MA"))
	assert.Equal(t, "42.00", tabela.Cell(0, "AMOUNTMST"))
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := tabular.Parse("custos.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, tabular.ErrUnsupportedFormat)
}

func TestParseEmptyFile(t *testing.T) {
	_, err := tabular.Parse("custos.csv", strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseData(t *testing.T) {
	casos := map[string]time.Time{
		"2025-01-15":          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		"2025-01-15 10:30:00": time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		"15/01/2025":          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		"15-01-2025":          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		"1/15/25 10:30":       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	for entrada, esperado := range casos {
		got, err := tabular.ParseData(entrada)
		require.NoError(t, err, entrada)
		assert.Equal(t, esperado, got, entrada)
	}

	_, err := tabular.ParseData("not-a-date")
	assert.Error(t, err)
}

func TestParseDataDescartaHorario(t *testing.T) {
	manha, err := tabular.ParseData("2025-01-05 09:00:00")
	require.NoError(t, err)
	tarde, err := tabular.ParseData("2025-01-05 15:04:05")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), manha)
	assert.True(t, manha.Equal(tarde), "same calendar day regardless of time-of-day")
}

func TestParseValor(t *testing.T) {
	v, err := tabular.ParseValor("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", v.String())

	v, err = tabular.ParseValor("1.234,56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", v.String())

	v, err = tabular.ParseValor("-300,10")
	require.NoError(t, err)
	assert.Equal(t, "-300.1", v.String())

	_, err = tabular.ParseValor("abc")
	assert.Error(t, err)
}
