package repositories

import (
	"context"

	"github.com/custos-app/custos-backend/internal/core/domain"
)

// ResponsavelRepository defines persistence operations for the cost-center
// dimension. Ingestion-time resolution lives in TransacaoRepository because it
// must share the import transaction.
type ResponsavelRepository interface {
	SaveResponsavel(ctx context.Context, r domain.Responsavel) error
	FindResponsavelByID(ctx context.Context, responsavelID string) (*domain.Responsavel, error)
	FindResponsavelByNome(ctx context.Context, nome string) (*domain.Responsavel, error)
	ListResponsaveis(ctx context.Context) ([]domain.Responsavel, error)
	UpdateResponsavel(ctx context.Context, r domain.Responsavel) error
	DeleteResponsavel(ctx context.Context, responsavelID string) error
}
