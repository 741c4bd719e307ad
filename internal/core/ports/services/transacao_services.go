package services

import (
	"context"

	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/custos-app/custos-backend/internal/dto"
)

// TransacaoSvcFacade lists ingested fact rows.
type TransacaoSvcFacade interface {
	ListTransacoes(ctx context.Context, params dto.ListTransacoesParams) ([]domain.Transacao, error)
}
