package services

import (
	"context"

	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/custos-app/custos-backend/internal/dto"
)

// ResponsavelSvcFacade provides CRUD over the cost-center dimension.
type ResponsavelSvcFacade interface {
	CreateResponsavel(ctx context.Context, req dto.CreateResponsavelRequest) (*domain.Responsavel, error)
	GetResponsavelByID(ctx context.Context, responsavelID string) (*domain.Responsavel, error)
	ListResponsaveis(ctx context.Context) ([]domain.Responsavel, error)
	UpdateResponsavel(ctx context.Context, responsavelID string, req dto.UpdateResponsavelRequest) (*domain.Responsavel, error)
	DeleteResponsavel(ctx context.Context, responsavelID string) error
}
