package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custos-app/custos-backend/internal/apperrors"
	"github.com/custos-app/custos-backend/internal/core/domain"
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/internal/dto"
)

type TransacaoService struct {
	transacaoRepo portsrepo.TransacaoRepository
}

func NewTransacaoService(transacaoRepo portsrepo.TransacaoRepository) *TransacaoService {
	return &TransacaoService{transacaoRepo: transacaoRepo}
}

var _ portssvc.TransacaoSvcFacade = (*TransacaoService)(nil)

func (s *TransacaoService) ListTransacoes(ctx context.Context, params dto.ListTransacoesParams) ([]domain.Transacao, error) {
	var filtro domain.PeriodoFiltro
	if params.Inicio != "" {
		t, err := time.Parse("2006-01-02", params.Inicio)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("Data 'inicio' inválida: %s", params.Inicio))
		}
		filtro.Inicio = &t
	}
	if params.Fim != "" {
		t, err := time.Parse("2006-01-02", params.Fim)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("Data 'fim' inválida: %s", params.Fim))
		}
		filtro.Fim = &t
	}
	return s.transacaoRepo.ListTransacoes(ctx, filtro, params.Limit, params.Offset)
}
