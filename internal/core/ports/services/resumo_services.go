package services

import (
	"context"
	"time"

	"github.com/custos-app/custos-backend/internal/dto"
)

// ResumoSvcFacade serves the pre-aggregated reporting endpoints. Display
// overlays are loaded fresh on every call and applied post-aggregation.
type ResumoSvcFacade interface {
	ResumoMensal(ctx context.Context, ano int) (*dto.ResumoMensalResponse, error)
	ResumoDiario(ctx context.Context, ano, mes int) (*dto.ResumoDiarioResponse, error)
	DetalhesSetor(ctx context.Context, ano int, setor string, mes *int) ([]dto.DetalheSetorDTO, error)
	ResumoFornecedores(ctx context.Context, ano int, mes *int) (*dto.ResumoFornecedoresResponse, error)
	DetalhesFornecedor(ctx context.Context, ano int, fornecedor string, mes *int) ([]dto.DetalheFornecedorDTO, error)
	TransacoesFornecedor(ctx context.Context, ano int, fornecedor string, mes *int) ([]dto.TransacaoFornecedorDTO, error)
	ResumoGeral(ctx context.Context, periodo string, ano, mes int, semana *int) (*dto.ResumoGeralResponse, error)
	DashboardResumo(ctx context.Context, inicio, fim *time.Time) (*dto.DashboardResumoResponse, error)
	FornecedoresUnicos(ctx context.Context) ([]string, error)
}
