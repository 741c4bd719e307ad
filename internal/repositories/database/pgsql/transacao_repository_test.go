package pgsql

import (
	"testing"
	"time"

	"github.com/custos-app/custos-backend/internal/apperrors"
	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novaLinha(nome string, data time.Time) domain.NovaTransacao {
	return domain.NovaTransacao{
		ResponsavelNome: nome,
		Data:            data,
		Valor:           decimal.NewFromInt(10),
		DescricaoConta:  "Pecas",
	}
}

func TestChavesDoLoteDeduplica(t *testing.T) {
	dia1 := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	dia2 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	nomes, datas := chavesDoLote([]domain.NovaTransacao{
		novaLinha("Manutenção", dia1),
		novaLinha("Producao", dia1),
		novaLinha("Manutenção", dia2),
	})

	assert.Equal(t, []string{"Manutenção", "Producao"}, nomes)
	assert.Equal(t, []string{"2025-01-05", "2025-01-06"}, datas)
}

func TestChavesDoLoteColapsaHorarios(t *testing.T) {
	manha := time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)
	tarde := time.Date(2025, 1, 5, 15, 4, 5, 0, time.UTC)

	_, datas := chavesDoLote([]domain.NovaTransacao{
		novaLinha("Manutenção", manha),
		novaLinha("Manutenção", tarde),
	})

	assert.Equal(t, []string{"2025-01-05"}, datas, "one calendar date per day, whatever the time-of-day")
}

func TestMaterializaLote(t *testing.T) {
	dia := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	agora := time.Now()
	mapa := map[string]domain.Responsavel{
		"Manutenção": {ResponsavelID: "r1", Nome: "Manutenção"},
	}

	comDetalhe := novaLinha("Manutenção", dia)
	comDetalhe.TxtDetalhe = "NF 123"
	semDetalhe := novaLinha("Manutenção", dia)

	valores, puladas, err := materializaLote([]domain.NovaTransacao{comDetalhe, semDetalhe}, mapa, "custos.csv", agora, true)

	require.NoError(t, err)
	assert.Equal(t, 0, puladas)
	require.Len(t, valores, 2)
	assert.Equal(t, "r1", valores[0][1], "FK resolved through the map")
	require.NotNil(t, valores[0][5])
	assert.Equal(t, "NF 123", *valores[0][5].(*string))
	assert.Nil(t, valores[1][5], "empty detail stored as NULL")
	assert.Equal(t, "custos.csv", valores[0][7])
}

func TestMaterializaLoteEstritoFalhaSemMapeamento(t *testing.T) {
	dia := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	_, _, err := materializaLote([]domain.NovaTransacao{novaLinha("Fantasma", dia)}, map[string]domain.Responsavel{}, "custos.csv", time.Now(), true)

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
}

func TestMaterializaLoteLenientePulaSemMapeamento(t *testing.T) {
	dia := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	mapa := map[string]domain.Responsavel{
		"Manutenção": {ResponsavelID: "r1", Nome: "Manutenção"},
	}

	valores, puladas, err := materializaLote([]domain.NovaTransacao{
		novaLinha("Fantasma", dia),
		novaLinha("Manutenção", dia),
	}, mapa, "custos.csv", time.Now(), false)

	require.NoError(t, err)
	assert.Equal(t, 1, puladas)
	require.Len(t, valores, 1)
	assert.Equal(t, "r1", valores[0][1])
}
