package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/custos-app/custos-backend/internal/core/domain"
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	"github.com/custos-app/custos-backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock ResumoRepository ---
type MockResumoRepository struct {
	mock.Mock
}

var _ portsrepo.ResumoRepository = (*MockResumoRepository)(nil)

func (m *MockResumoRepository) TotaisPorMes(ctx context.Context, ano int) ([]domain.TotalMes, error) {
	args := m.Called(ctx, ano)
	return args.Get(0).([]domain.TotalMes), args.Error(1)
}

func (m *MockResumoRepository) TotaisPorSetorMes(ctx context.Context, ano int) ([]domain.TotalSetorMes, error) {
	args := m.Called(ctx, ano)
	return args.Get(0).([]domain.TotalSetorMes), args.Error(1)
}

func (m *MockResumoRepository) MesesComDados(ctx context.Context, ano int) ([]int, error) {
	args := m.Called(ctx, ano)
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockResumoRepository) TotaisPorDia(ctx context.Context, ano, mes int) ([]domain.TotalDia, error) {
	args := m.Called(ctx, ano, mes)
	return args.Get(0).([]domain.TotalDia), args.Error(1)
}

func (m *MockResumoRepository) DiasComDados(ctx context.Context, ano, mes int) ([]int, error) {
	args := m.Called(ctx, ano, mes)
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockResumoRepository) TotalPeriodo(ctx context.Context, f domain.PeriodoFiltro) (decimal.Decimal, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockResumoRepository) TotalFornecedoresPeriodo(ctx context.Context, f domain.PeriodoFiltro) (decimal.Decimal, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockResumoRepository) TotaisPorSetor(ctx context.Context, f domain.PeriodoFiltro, limite int) ([]domain.TotalSetor, error) {
	args := m.Called(ctx, f, limite)
	return args.Get(0).([]domain.TotalSetor), args.Error(1)
}

func (m *MockResumoRepository) DetalhesSetor(ctx context.Context, setor string, f domain.PeriodoFiltro) ([]domain.TotalDescricao, error) {
	args := m.Called(ctx, setor, f)
	return args.Get(0).([]domain.TotalDescricao), args.Error(1)
}

func (m *MockResumoRepository) TotaisPorFornecedor(ctx context.Context, f domain.PeriodoFiltro, limite int) ([]domain.TotalFornecedor, error) {
	args := m.Called(ctx, f, limite)
	return args.Get(0).([]domain.TotalFornecedor), args.Error(1)
}

func (m *MockResumoRepository) SetoresPorFornecedor(ctx context.Context, fornecedor string, f domain.PeriodoFiltro, limite int) ([]domain.SetorFornecedor, error) {
	args := m.Called(ctx, fornecedor, f, limite)
	return args.Get(0).([]domain.SetorFornecedor), args.Error(1)
}

func (m *MockResumoRepository) EvolucaoMensalFornecedor(ctx context.Context, fornecedor string, f domain.PeriodoFiltro) ([]domain.TotalMes, error) {
	args := m.Called(ctx, fornecedor, f)
	return args.Get(0).([]domain.TotalMes), args.Error(1)
}

func (m *MockResumoRepository) TransacoesFornecedor(ctx context.Context, fornecedor string, f domain.PeriodoFiltro) ([]domain.Transacao, error) {
	args := m.Called(ctx, fornecedor, f)
	return args.Get(0).([]domain.Transacao), args.Error(1)
}

func (m *MockResumoRepository) FornecedoresUnicos(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResumoRepository) TotaisPorTempo(ctx context.Context, f domain.PeriodoFiltro) ([]domain.TotalMesAno, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.TotalMesAno), args.Error(1)
}

// --- Mock ResponsavelRepository ---
type MockResponsavelRepository struct {
	mock.Mock
}

var _ portsrepo.ResponsavelRepository = (*MockResponsavelRepository)(nil)

func (m *MockResponsavelRepository) SaveResponsavel(ctx context.Context, r domain.Responsavel) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResponsavelRepository) FindResponsavelByID(ctx context.Context, responsavelID string) (*domain.Responsavel, error) {
	args := m.Called(ctx, responsavelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Responsavel), args.Error(1)
}

func (m *MockResponsavelRepository) FindResponsavelByNome(ctx context.Context, nome string) (*domain.Responsavel, error) {
	args := m.Called(ctx, nome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Responsavel), args.Error(1)
}

func (m *MockResponsavelRepository) ListResponsaveis(ctx context.Context) ([]domain.Responsavel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Responsavel), args.Error(1)
}

func (m *MockResponsavelRepository) UpdateResponsavel(ctx context.Context, r domain.Responsavel) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResponsavelRepository) DeleteResponsavel(ctx context.Context, responsavelID string) error {
	args := m.Called(ctx, responsavelID)
	return args.Error(0)
}

// --- Mock FornecedorConfigRepository ---
type MockFornecedorConfigRepository struct {
	mock.Mock
}

var _ portsrepo.FornecedorConfigRepository = (*MockFornecedorConfigRepository)(nil)

func (m *MockFornecedorConfigRepository) SaveFornecedorConfig(ctx context.Context, f domain.FornecedorConfig) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFornecedorConfigRepository) FindFornecedorConfigByID(ctx context.Context, configID string) (*domain.FornecedorConfig, error) {
	args := m.Called(ctx, configID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FornecedorConfig), args.Error(1)
}

func (m *MockFornecedorConfigRepository) ListFornecedorConfigs(ctx context.Context) ([]domain.FornecedorConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FornecedorConfig), args.Error(1)
}

func (m *MockFornecedorConfigRepository) UpdateFornecedorConfig(ctx context.Context, f domain.FornecedorConfig) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFornecedorConfigRepository) DeleteFornecedorConfig(ctx context.Context, configID string) error {
	args := m.Called(ctx, configID)
	return args.Error(0)
}

func (m *MockFornecedorConfigRepository) UpsertFornecedorConfigs(ctx context.Context, fs []domain.FornecedorConfig) (int, int, error) {
	args := m.Called(ctx, fs)
	return args.Int(0), args.Int(1), args.Error(2)
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newResumoMocks() (*MockResumoRepository, *MockResponsavelRepository, *MockFornecedorConfigRepository, *services.ResumoService) {
	resumoRepo := new(MockResumoRepository)
	responsavelRepo := new(MockResponsavelRepository)
	configRepo := new(MockFornecedorConfigRepository)
	svc := services.NewResumoService(resumoRepo, responsavelRepo, configRepo)
	return resumoRepo, responsavelRepo, configRepo, svc
}

func TestResumoMensalAplicaNomesDeExibicao(t *testing.T) {
	resumoRepo, responsavelRepo, _, svc := newResumoMocks()

	responsavelRepo.On("ListResponsaveis", mock.Anything).Return([]domain.Responsavel{
		{Nome: "MANUT", NomeExibicao: strPtr("Manutenção")},
	}, nil)
	resumoRepo.On("TotaisPorMes", mock.Anything, 2025).Return([]domain.TotalMes{
		{Mes: 1, Total: dec("100.50")},
	}, nil)
	resumoRepo.On("TotaisPorSetorMes", mock.Anything, 2025).Return([]domain.TotalSetorMes{
		{Mes: 1, Setor: "MANUT", Total: dec("80")},
		{Mes: 1, Setor: "OUTRO", Total: dec("20.50")},
	}, nil)
	resumoRepo.On("MesesComDados", mock.Anything, 2025).Return([]int{1}, nil)
	resumoRepo.On("TotalPeriodo", mock.Anything, domain.FiltroAno(2025)).Return(dec("100.50"), nil)

	resp, err := svc.ResumoMensal(context.Background(), 2025)

	require.NoError(t, err)
	assert.Equal(t, 100.50, resp.Totais.TotalAno)
	assert.Equal(t, []int{1}, resp.Totais.MesesComDados)
	require.Len(t, resp.PorSetorMes, 2)
	assert.Equal(t, "Manutenção", resp.PorSetorMes[0].Setor, "overlay display name applied")
	assert.Equal(t, "OUTRO", resp.PorSetorMes[1].Setor, "raw name kept without overlay")
}

func TestResumoFornecedoresOcultaEFazOverlay(t *testing.T) {
	resumoRepo, responsavelRepo, configRepo, svc := newResumoMocks()

	responsavelRepo.On("ListResponsaveis", mock.Anything).Return([]domain.Responsavel{}, nil)
	configRepo.On("ListFornecedorConfigs", mock.Anything).Return([]domain.FornecedorConfig{
		{NomeOriginal: "ACME LTDA", NomeExibicao: strPtr("ACME"), Exibir: true},
		{NomeOriginal: "INTERNO", Exibir: false},
	}, nil)

	filtro := domain.FiltroAno(2025)
	resumoRepo.On("TotaisPorFornecedor", mock.Anything, filtro, 50).Return([]domain.TotalFornecedor{
		{Fornecedor: "ACME LTDA", Total: dec("500"), Transacoes: 3},
		{Fornecedor: "INTERNO", Total: dec("400"), Transacoes: 2},
		{Fornecedor: "BETA", Total: dec("100"), Transacoes: 1},
	}, nil)
	resumoRepo.On("SetoresPorFornecedor", mock.Anything, "ACME LTDA", filtro, 5).Return([]domain.SetorFornecedor{
		{Setor: "MANUT", Total: dec("500"), Count: 3},
	}, nil)
	resumoRepo.On("SetoresPorFornecedor", mock.Anything, "BETA", filtro, 5).Return([]domain.SetorFornecedor{}, nil)
	resumoRepo.On("EvolucaoMensalFornecedor", mock.Anything, "ACME LTDA", filtro).Return([]domain.TotalMes{
		{Mes: 2, Total: dec("500")},
	}, nil)
	resumoRepo.On("EvolucaoMensalFornecedor", mock.Anything, "BETA", filtro).Return([]domain.TotalMes{}, nil)
	resumoRepo.On("TotalFornecedoresPeriodo", mock.Anything, filtro).Return(dec("600"), nil)

	resp, err := svc.ResumoFornecedores(context.Background(), 2025, nil)

	require.NoError(t, err)
	require.Len(t, resp.PorFornecedor, 2, "hidden supplier dropped")
	assert.Equal(t, "ACME", resp.PorFornecedor[0].Fornecedor)
	assert.Equal(t, "ACME LTDA", resp.PorFornecedor[0].FornecedorOriginal)
	assert.Equal(t, "BETA", resp.PorFornecedor[1].Fornecedor)
	assert.Contains(t, resp.PorSetor, "ACME", "por_setor keyed by display name")
	assert.Equal(t, map[int]float64{2: 500}, resp.EvolucaoMensal["ACME"])
	assert.Equal(t, 600.0, resp.TotalAno)
}

func TestResumoFornecedoresMesclaExibicaoCompartilhada(t *testing.T) {
	resumoRepo, responsavelRepo, configRepo, svc := newResumoMocks()

	responsavelRepo.On("ListResponsaveis", mock.Anything).Return([]domain.Responsavel{}, nil)
	configRepo.On("ListFornecedorConfigs", mock.Anything).Return([]domain.FornecedorConfig{
		{NomeOriginal: "ACME LTDA", NomeExibicao: strPtr("ACME"), Exibir: true},
		{NomeOriginal: "ACME SA", NomeExibicao: strPtr("ACME"), Exibir: true},
	}, nil)

	filtro := domain.FiltroAno(2025)
	resumoRepo.On("TotaisPorFornecedor", mock.Anything, filtro, 50).Return([]domain.TotalFornecedor{
		{Fornecedor: "ACME LTDA", Total: dec("300"), Transacoes: 2},
		{Fornecedor: "ACME SA", Total: dec("200"), Transacoes: 1},
	}, nil)
	resumoRepo.On("SetoresPorFornecedor", mock.Anything, "ACME LTDA", filtro, 5).Return([]domain.SetorFornecedor{
		{Setor: "MANUT", Total: dec("300"), Count: 2},
	}, nil)
	resumoRepo.On("SetoresPorFornecedor", mock.Anything, "ACME SA", filtro, 5).Return([]domain.SetorFornecedor{
		{Setor: "MANUT", Total: dec("150"), Count: 1},
		{Setor: "PROD", Total: dec("50"), Count: 1},
	}, nil)
	resumoRepo.On("EvolucaoMensalFornecedor", mock.Anything, "ACME LTDA", filtro).Return([]domain.TotalMes{
		{Mes: 1, Total: dec("300")},
	}, nil)
	resumoRepo.On("EvolucaoMensalFornecedor", mock.Anything, "ACME SA", filtro).Return([]domain.TotalMes{
		{Mes: 1, Total: dec("120")},
		{Mes: 2, Total: dec("80")},
	}, nil)
	resumoRepo.On("TotalFornecedoresPeriodo", mock.Anything, filtro).Return(dec("500"), nil)

	resp, err := svc.ResumoFornecedores(context.Background(), 2025, nil)

	require.NoError(t, err)
	require.Len(t, resp.PorFornecedor, 2, "each raw supplier keeps its own entry")
	assert.Equal(t, "ACME LTDA", resp.PorFornecedor[0].FornecedorOriginal)
	assert.Equal(t, "ACME SA", resp.PorFornecedor[1].FornecedorOriginal)

	require.Len(t, resp.PorSetor, 1, "shared display name yields one breakdown key")
	setores := resp.PorSetor["ACME"]
	require.Len(t, setores, 2)
	assert.Equal(t, "MANUT", setores[0].Setor)
	assert.Equal(t, 450.0, setores[0].Total, "sector totals merged across raw names")
	assert.Equal(t, "PROD", setores[1].Setor)
	assert.Equal(t, 50.0, setores[1].Total)

	assert.Equal(t, map[int]float64{1: 420, 2: 80}, resp.EvolucaoMensal["ACME"], "month series summed across raw names")
}

func TestResumoGeralSemanaISO(t *testing.T) {
	resumoRepo, responsavelRepo, configRepo, svc := newResumoMocks()

	responsavelRepo.On("ListResponsaveis", mock.Anything).Return([]domain.Responsavel{}, nil)
	configRepo.On("ListFornecedorConfigs", mock.Anything).Return([]domain.FornecedorConfig{}, nil)

	// ISO week 1 of 2025 runs Monday 2024-12-30 through Sunday 2025-01-05.
	esperado := mock.MatchedBy(func(f domain.PeriodoFiltro) bool {
		return f.Inicio != nil && f.Fim != nil &&
			f.Inicio.Equal(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)) &&
			f.Fim.Equal(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	})
	resumoRepo.On("TotaisPorSetor", mock.Anything, esperado, 15).Return([]domain.TotalSetor{}, nil)
	resumoRepo.On("TotaisPorFornecedor", mock.Anything, esperado, 0).Return([]domain.TotalFornecedor{}, nil)
	resumoRepo.On("TotalPeriodo", mock.Anything, esperado).Return(dec("0"), nil)

	semana := 1
	resp, err := svc.ResumoGeral(context.Background(), "semana", 2025, 1, &semana)

	require.NoError(t, err)
	assert.Equal(t, "semana", resp.Periodo)
	resumoRepo.AssertExpectations(t)
}

func TestResumoGeralPeriodoInvalido(t *testing.T) {
	_, responsavelRepo, configRepo, svc := newResumoMocks()

	responsavelRepo.On("ListResponsaveis", mock.Anything).Return([]domain.Responsavel{}, nil)
	configRepo.On("ListFornecedorConfigs", mock.Anything).Return([]domain.FornecedorConfig{}, nil)

	_, err := svc.ResumoGeral(context.Background(), "quinzena", 2025, 1, nil)
	assert.Error(t, err)
}

func TestDashboardResumoRotulosDeTempo(t *testing.T) {
	resumoRepo, responsavelRepo, _, svc := newResumoMocks()

	responsavelRepo.On("ListResponsaveis", mock.Anything).Return([]domain.Responsavel{}, nil)

	filtro := domain.PeriodoFiltro{}
	resumoRepo.On("TotalPeriodo", mock.Anything, filtro).Return(dec("300"), nil)
	resumoRepo.On("TotaisPorSetor", mock.Anything, filtro, 0).Return([]domain.TotalSetor{
		{Setor: "MANUT", Total: dec("300")},
	}, nil)
	resumoRepo.On("TotaisPorTempo", mock.Anything, filtro).Return([]domain.TotalMesAno{
		{Ano: 2025, Mes: 1, Total: dec("100")},
		{Ano: 2025, Mes: 2, Total: dec("200")},
	}, nil)

	resp, err := svc.DashboardResumo(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 300.0, resp.TotalGasto)
	require.Len(t, resp.ResumoTempo, 2)
	assert.Equal(t, "Jan/2025", resp.ResumoTempo[0].Nome)
	assert.Equal(t, "Fev/2025", resp.ResumoTempo[1].Nome)
}
