package services

import (
	"context"

	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/custos-app/custos-backend/internal/dto"
)

// FornecedorConfigSvcFacade provides CRUD and bulk upsert over the supplier
// display overlay.
type FornecedorConfigSvcFacade interface {
	CreateFornecedorConfig(ctx context.Context, req dto.CreateFornecedorConfigRequest) (*domain.FornecedorConfig, error)
	GetFornecedorConfigByID(ctx context.Context, configID string) (*domain.FornecedorConfig, error)
	ListFornecedorConfigs(ctx context.Context) ([]domain.FornecedorConfig, error)
	UpdateFornecedorConfig(ctx context.Context, configID string, req dto.UpdateFornecedorConfigRequest) (*domain.FornecedorConfig, error)
	DeleteFornecedorConfig(ctx context.Context, configID string) error
	BulkUpsertFornecedorConfigs(ctx context.Context, req dto.BulkFornecedorConfigRequest) (*dto.BulkFornecedorConfigResponse, error)
}
