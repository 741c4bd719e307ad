package repositories

import (
	"context"

	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResumoRepository exposes the fixed catalogue of aggregate queries over the
// fact table. All results are keyed by RAW stored names; display-name
// rewriting and hidden-supplier filtering happen in the service layer.
// A limite of 0 means no limit.
type ResumoRepository interface {
	TotaisPorMes(ctx context.Context, ano int) ([]domain.TotalMes, error)
	TotaisPorSetorMes(ctx context.Context, ano int) ([]domain.TotalSetorMes, error)
	MesesComDados(ctx context.Context, ano int) ([]int, error)

	TotaisPorDia(ctx context.Context, ano, mes int) ([]domain.TotalDia, error)
	DiasComDados(ctx context.Context, ano, mes int) ([]int, error)

	// TotalPeriodo sums valor over every fact row in the window.
	TotalPeriodo(ctx context.Context, f domain.PeriodoFiltro) (decimal.Decimal, error)
	// TotalFornecedoresPeriodo sums valor over rows that carry a supplier.
	TotalFornecedoresPeriodo(ctx context.Context, f domain.PeriodoFiltro) (decimal.Decimal, error)

	TotaisPorSetor(ctx context.Context, f domain.PeriodoFiltro, limite int) ([]domain.TotalSetor, error)
	DetalhesSetor(ctx context.Context, setor string, f domain.PeriodoFiltro) ([]domain.TotalDescricao, error)

	TotaisPorFornecedor(ctx context.Context, f domain.PeriodoFiltro, limite int) ([]domain.TotalFornecedor, error)
	SetoresPorFornecedor(ctx context.Context, fornecedor string, f domain.PeriodoFiltro, limite int) ([]domain.SetorFornecedor, error)
	EvolucaoMensalFornecedor(ctx context.Context, fornecedor string, f domain.PeriodoFiltro) ([]domain.TotalMes, error)
	TransacoesFornecedor(ctx context.Context, fornecedor string, f domain.PeriodoFiltro) ([]domain.Transacao, error)
	FornecedoresUnicos(ctx context.Context) ([]string, error)

	TotaisPorTempo(ctx context.Context, f domain.PeriodoFiltro) ([]domain.TotalMesAno, error)
}
