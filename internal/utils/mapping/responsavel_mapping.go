package mapping

import (
	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/custos-app/custos-backend/internal/models"
)

// ToModelResponsavel converts a domain Responsavel to a model Responsavel
func ToModelResponsavel(d domain.Responsavel) models.Responsavel {
	return models.Responsavel{
		ResponsavelID:   d.ResponsavelID,
		Nome:            d.Nome,
		NomeExibicao:    d.NomeExibicao,
		OrcamentoMensal: d.OrcamentoMensal,
		CreatedAt:       d.CreatedAt,
		LastUpdatedAt:   d.LastUpdatedAt,
	}
}

// ToDomainResponsavel converts a model Responsavel to a domain Responsavel
func ToDomainResponsavel(m models.Responsavel) domain.Responsavel {
	return domain.Responsavel{
		ResponsavelID:   m.ResponsavelID,
		Nome:            m.Nome,
		NomeExibicao:    m.NomeExibicao,
		OrcamentoMensal: m.OrcamentoMensal,
		CreatedAt:       m.CreatedAt,
		LastUpdatedAt:   m.LastUpdatedAt,
	}
}

// ToDomainResponsavelSlice converts a slice of model Responsavel to domain
func ToDomainResponsavelSlice(ms []models.Responsavel) []domain.Responsavel {
	ds := make([]domain.Responsavel, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainResponsavel(m)
	}
	return ds
}
