package repositories

import (
	"context"

	"github.com/custos-app/custos-backend/internal/core/domain"
)

// TransacaoRepository defines persistence operations for fact rows.
type TransacaoRepository interface {
	// ImportarLote runs the whole ingestion pipeline in one database
	// transaction: resolve-or-create the responsavel dimension for every
	// distinct name in the batch, delete existing rows whose date appears in
	// the batch, then bulk insert the new rows in fixed-size chunks. Any error
	// rolls back every change. When estrito is true a row whose responsavel
	// is missing from the resolved map aborts the import instead of being
	// skipped.
	ImportarLote(ctx context.Context, arquivo string, linhas []domain.NovaTransacao, estrito bool) (domain.ResultadoImportacao, error)

	// ListTransacoes returns fact rows joined with their responsavel name,
	// optionally restricted to a date window, newest first.
	ListTransacoes(ctx context.Context, filtro domain.PeriodoFiltro, limit, offset int) ([]domain.Transacao, error)
}
