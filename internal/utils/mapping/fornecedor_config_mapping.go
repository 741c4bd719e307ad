package mapping

import (
	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/custos-app/custos-backend/internal/models"
)

// ToModelFornecedorConfig converts a domain FornecedorConfig to a model FornecedorConfig
func ToModelFornecedorConfig(d domain.FornecedorConfig) models.FornecedorConfig {
	return models.FornecedorConfig{
		ConfigID:      d.ConfigID,
		NomeOriginal:  d.NomeOriginal,
		NomeExibicao:  d.NomeExibicao,
		Exibir:        d.Exibir,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainFornecedorConfig converts a model FornecedorConfig to a domain FornecedorConfig
func ToDomainFornecedorConfig(m models.FornecedorConfig) domain.FornecedorConfig {
	return domain.FornecedorConfig{
		ConfigID:      m.ConfigID,
		NomeOriginal:  m.NomeOriginal,
		NomeExibicao:  m.NomeExibicao,
		Exibir:        m.Exibir,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToDomainFornecedorConfigSlice converts a slice of model FornecedorConfig to domain
func ToDomainFornecedorConfigSlice(ms []models.FornecedorConfig) []domain.FornecedorConfig {
	ds := make([]domain.FornecedorConfig, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFornecedorConfig(m)
	}
	return ds
}
