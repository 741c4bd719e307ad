package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custos-app/custos-backend/internal/core/domain"
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/internal/dto"
	"github.com/google/uuid"
)

type FornecedorConfigService struct {
	fornecedorConfigRepo portsrepo.FornecedorConfigRepository
}

func NewFornecedorConfigService(fornecedorConfigRepo portsrepo.FornecedorConfigRepository) *FornecedorConfigService {
	return &FornecedorConfigService{fornecedorConfigRepo: fornecedorConfigRepo}
}

var _ portssvc.FornecedorConfigSvcFacade = (*FornecedorConfigService)(nil)

func fromCreateRequest(req dto.CreateFornecedorConfigRequest, now time.Time) domain.FornecedorConfig {
	exibir := true
	if req.Exibir != nil {
		exibir = *req.Exibir
	}
	return domain.FornecedorConfig{
		ConfigID:      uuid.NewString(),
		NomeOriginal:  req.NomeOriginal,
		NomeExibicao:  req.NomeExibicao,
		Exibir:        exibir,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

func (s *FornecedorConfigService) CreateFornecedorConfig(ctx context.Context, req dto.CreateFornecedorConfigRequest) (*domain.FornecedorConfig, error) {
	f := fromCreateRequest(req, time.Now())
	if err := s.fornecedorConfigRepo.SaveFornecedorConfig(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to create fornecedor config: %w", err)
	}
	return &f, nil
}

func (s *FornecedorConfigService) GetFornecedorConfigByID(ctx context.Context, configID string) (*domain.FornecedorConfig, error) {
	return s.fornecedorConfigRepo.FindFornecedorConfigByID(ctx, configID)
}

func (s *FornecedorConfigService) ListFornecedorConfigs(ctx context.Context) ([]domain.FornecedorConfig, error) {
	return s.fornecedorConfigRepo.ListFornecedorConfigs(ctx)
}

func (s *FornecedorConfigService) UpdateFornecedorConfig(ctx context.Context, configID string, req dto.UpdateFornecedorConfigRequest) (*domain.FornecedorConfig, error) {
	f, err := s.fornecedorConfigRepo.FindFornecedorConfigByID(ctx, configID)
	if err != nil {
		return nil, err
	}
	if req.NomeExibicao != nil {
		f.NomeExibicao = req.NomeExibicao
	}
	if req.Exibir != nil {
		f.Exibir = *req.Exibir
	}
	f.LastUpdatedAt = time.Now()
	if err := s.fornecedorConfigRepo.UpdateFornecedorConfig(ctx, *f); err != nil {
		return nil, fmt.Errorf("failed to update fornecedor config %s: %w", configID, err)
	}
	return f, nil
}

func (s *FornecedorConfigService) DeleteFornecedorConfig(ctx context.Context, configID string) error {
	return s.fornecedorConfigRepo.DeleteFornecedorConfig(ctx, configID)
}

func (s *FornecedorConfigService) BulkUpsertFornecedorConfigs(ctx context.Context, req dto.BulkFornecedorConfigRequest) (*dto.BulkFornecedorConfigResponse, error) {
	now := time.Now()
	fs := make([]domain.FornecedorConfig, 0, len(req.Configs))
	for _, c := range req.Configs {
		fs = append(fs, fromCreateRequest(c, now))
	}
	criados, atualizados, err := s.fornecedorConfigRepo.UpsertFornecedorConfigs(ctx, fs)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk upsert fornecedor configs: %w", err)
	}
	return &dto.BulkFornecedorConfigResponse{Criados: criados, Atualizados: atualizados}, nil
}
