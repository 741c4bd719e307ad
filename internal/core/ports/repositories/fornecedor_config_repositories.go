package repositories

import (
	"context"

	"github.com/custos-app/custos-backend/internal/core/domain"
)

// FornecedorConfigRepository defines persistence operations for the supplier
// display overlay table.
type FornecedorConfigRepository interface {
	SaveFornecedorConfig(ctx context.Context, f domain.FornecedorConfig) error
	FindFornecedorConfigByID(ctx context.Context, configID string) (*domain.FornecedorConfig, error)
	ListFornecedorConfigs(ctx context.Context) ([]domain.FornecedorConfig, error)
	UpdateFornecedorConfig(ctx context.Context, f domain.FornecedorConfig) error
	DeleteFornecedorConfig(ctx context.Context, configID string) error

	// UpsertFornecedorConfigs inserts or updates configs keyed by
	// nome_original, returning created and updated counts.
	UpsertFornecedorConfigs(ctx context.Context, fs []domain.FornecedorConfig) (criados, atualizados int, err error)
}
