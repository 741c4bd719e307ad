package dto

import (
	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateResponsavelRequest defines the data for creating a responsavel.
type CreateResponsavelRequest struct {
	Nome            string           `json:"nome" binding:"required"`
	NomeExibicao    *string          `json:"nome_exibicao"`
	OrcamentoMensal *decimal.Decimal `json:"orcamento_mensal"`
}

// UpdateResponsavelRequest defines the updatable responsavel attributes.
// Pointers differentiate omitted fields from zero values.
type UpdateResponsavelRequest struct {
	NomeExibicao    *string          `json:"nome_exibicao"`
	OrcamentoMensal *decimal.Decimal `json:"orcamento_mensal"`
}

// ResponsavelResponse is the API representation of a responsavel.
type ResponsavelResponse struct {
	ResponsavelID   string  `json:"responsavel_id"`
	Nome            string  `json:"nome"`
	NomeExibicao    *string `json:"nome_exibicao,omitempty"`
	OrcamentoMensal float64 `json:"orcamento_mensal"`
}

// ToResponsavelResponse converts a domain.Responsavel to its API shape.
func ToResponsavelResponse(r *domain.Responsavel) ResponsavelResponse {
	return ResponsavelResponse{
		ResponsavelID:   r.ResponsavelID,
		Nome:            r.Nome,
		NomeExibicao:    r.NomeExibicao,
		OrcamentoMensal: r.OrcamentoMensal.InexactFloat64(),
	}
}

// ListResponsaveisResponse wraps the list of responsaveis.
type ListResponsaveisResponse struct {
	Responsaveis []ResponsavelResponse `json:"responsaveis"`
}

// ToListResponsaveisResponse converts a slice of domain.Responsavel.
func ToListResponsaveisResponse(rs []domain.Responsavel) ListResponsaveisResponse {
	out := make([]ResponsavelResponse, len(rs))
	for i := range rs {
		out[i] = ToResponsavelResponse(&rs[i])
	}
	return ListResponsaveisResponse{Responsaveis: out}
}
