package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/custos-app/custos-backend/internal/apperrors"
	"github.com/custos-app/custos-backend/internal/core/domain"
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	"github.com/custos-app/custos-backend/internal/core/services"
	"github.com/custos-app/custos-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock TransacaoRepository ---
type MockTransacaoRepository struct {
	mock.Mock
}

var _ portsrepo.TransacaoRepository = (*MockTransacaoRepository)(nil)

func (m *MockTransacaoRepository) ImportarLote(ctx context.Context, arquivo string, linhas []domain.NovaTransacao, estrito bool) (domain.ResultadoImportacao, error) {
	args := m.Called(ctx, arquivo, linhas, estrito)
	return args.Get(0).(domain.ResultadoImportacao), args.Error(1)
}

func (m *MockTransacaoRepository) ListTransacoes(ctx context.Context, filtro domain.PeriodoFiltro, limit, offset int) ([]domain.Transacao, error) {
	args := m.Called(ctx, filtro, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transacao), args.Error(1)
}

func TestImportarArquivoCSV(t *testing.T) {
	csv := "MA,TRANSDATE,AMOUNTMST,Descrição Conta,TXT,Fornecedor\n" +
		"Manutenção,2025-01-15,\"1.234,56\",Pecas,Detalhe,ACME\n" +
		"nan,2025-01-15,10,Lixo,,\n" +
		",2025-01-16,20,Lixo,,\n" +
		"Producao,2025-01-16,200,Insumos,nan,nan\n"

	repo := new(MockTransacaoRepository)
	repo.On("ImportarLote", mock.Anything, "custos.csv", mock.MatchedBy(func(linhas []domain.NovaTransacao) bool {
		if len(linhas) != 2 {
			return false
		}
		primeira, segunda := linhas[0], linhas[1]
		return primeira.ResponsavelNome == "Manutenção" &&
			primeira.Valor.String() == "1234.56" &&
			primeira.Data.Year() == 2025 && primeira.Data.Month() == 1 && primeira.Data.Day() == 15 &&
			primeira.TxtDetalhe == "Detalhe" &&
			primeira.Fornecedor != nil && *primeira.Fornecedor == "ACME" &&
			segunda.ResponsavelNome == "Producao" &&
			segunda.TxtDetalhe == "" &&
			segunda.Fornecedor == nil
	}), true).Return(domain.ResultadoImportacao{LinhasImportadas: 2}, nil)

	svc := services.NewImportacaoService(repo, true)
	res, err := svc.ImportarArquivo(context.Background(), "custos.csv", strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, res.LinhasImportadas)
	repo.AssertExpectations(t)
}

func TestImportarArquivoColunasFaltando(t *testing.T) {
	csv := "MA,Coluna Estranha\nSetor,1\n"

	repo := new(MockTransacaoRepository)
	svc := services.NewImportacaoService(repo, true)

	_, err := svc.ImportarArquivo(context.Background(), "custos.csv", strings.NewReader(csv))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "TRANSDATE")
	assert.Contains(t, err.Error(), "Coluna Estranha", "message should list the columns that were found")
	repo.AssertNotCalled(t, "ImportarLote")
}

func TestImportarArquivoDataInvalida(t *testing.T) {
	csv := "MA,TRANSDATE,AMOUNTMST,Descrição Conta\n" +
		"Setor,2025-01-15,10,Ok\n" +
		"Setor,quinta-feira,20,Ruim\n"

	repo := new(MockTransacaoRepository)
	svc := services.NewImportacaoService(repo, true)

	_, err := svc.ImportarArquivo(context.Background(), "custos.csv", strings.NewReader(csv))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "linha 3")
	repo.AssertNotCalled(t, "ImportarLote")
}

func TestImportarArquivoFormatoNaoSuportado(t *testing.T) {
	repo := new(MockTransacaoRepository)
	svc := services.NewImportacaoService(repo, true)

	_, err := svc.ImportarArquivo(context.Background(), "custos.pdf", strings.NewReader("x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestImportarArquivoSemLinhasValidas(t *testing.T) {
	csv := "MA,TRANSDATE,AMOUNTMST,Descrição Conta\n" +
		"nan,2025-01-15,10,Lixo\n"

	repo := new(MockTransacaoRepository)
	svc := services.NewImportacaoService(repo, true)

	_, err := svc.ImportarArquivo(context.Background(), "custos.csv", strings.NewReader(csv))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "ImportarLote")
}

func TestListTransacoesValidaDatas(t *testing.T) {
	repo := new(MockTransacaoRepository)
	svc := services.NewTransacaoService(repo)

	_, err := svc.ListTransacoes(context.Background(), dto.ListTransacoesParams{Inicio: "15/01/2025"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
