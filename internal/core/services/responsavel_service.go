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
	"github.com/shopspring/decimal"
)

type ResponsavelService struct {
	responsavelRepo portsrepo.ResponsavelRepository
}

func NewResponsavelService(responsavelRepo portsrepo.ResponsavelRepository) *ResponsavelService {
	return &ResponsavelService{responsavelRepo: responsavelRepo}
}

var _ portssvc.ResponsavelSvcFacade = (*ResponsavelService)(nil)

func (s *ResponsavelService) CreateResponsavel(ctx context.Context, req dto.CreateResponsavelRequest) (*domain.Responsavel, error) {
	now := time.Now()
	orcamento := decimal.Zero
	if req.OrcamentoMensal != nil {
		orcamento = *req.OrcamentoMensal
	}
	r := domain.Responsavel{
		ResponsavelID:   uuid.NewString(),
		Nome:            req.Nome,
		NomeExibicao:    req.NomeExibicao,
		OrcamentoMensal: orcamento,
		CreatedAt:       now,
		LastUpdatedAt:   now,
	}
	if err := s.responsavelRepo.SaveResponsavel(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create responsavel: %w", err)
	}
	return &r, nil
}

func (s *ResponsavelService) GetResponsavelByID(ctx context.Context, responsavelID string) (*domain.Responsavel, error) {
	return s.responsavelRepo.FindResponsavelByID(ctx, responsavelID)
}

func (s *ResponsavelService) ListResponsaveis(ctx context.Context) ([]domain.Responsavel, error) {
	return s.responsavelRepo.ListResponsaveis(ctx)
}

func (s *ResponsavelService) UpdateResponsavel(ctx context.Context, responsavelID string, req dto.UpdateResponsavelRequest) (*domain.Responsavel, error) {
	r, err := s.responsavelRepo.FindResponsavelByID(ctx, responsavelID)
	if err != nil {
		return nil, err
	}
	if req.NomeExibicao != nil {
		r.NomeExibicao = req.NomeExibicao
	}
	if req.OrcamentoMensal != nil {
		r.OrcamentoMensal = *req.OrcamentoMensal
	}
	r.LastUpdatedAt = time.Now()
	if err := s.responsavelRepo.UpdateResponsavel(ctx, *r); err != nil {
		return nil, fmt.Errorf("failed to update responsavel %s: %w", responsavelID, err)
	}
	return r, nil
}

func (s *ResponsavelService) DeleteResponsavel(ctx context.Context, responsavelID string) error {
	return s.responsavelRepo.DeleteResponsavel(ctx, responsavelID)
}
