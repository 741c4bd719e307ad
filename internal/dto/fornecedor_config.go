package dto

import "github.com/custos-app/custos-backend/internal/core/domain"

// CreateFornecedorConfigRequest defines the data for creating a supplier
// display config. Exibir defaults to true when omitted.
type CreateFornecedorConfigRequest struct {
	NomeOriginal string  `json:"nome_original" binding:"required"`
	NomeExibicao *string `json:"nome_exibicao"`
	Exibir       *bool   `json:"exibir"`
}

// UpdateFornecedorConfigRequest defines the updatable config attributes.
type UpdateFornecedorConfigRequest struct {
	NomeExibicao *string `json:"nome_exibicao"`
	Exibir       *bool   `json:"exibir"`
}

// BulkFornecedorConfigRequest carries a batch of configs to upsert.
type BulkFornecedorConfigRequest struct {
	Configs []CreateFornecedorConfigRequest `json:"configs" binding:"required"`
}

// BulkFornecedorConfigResponse reports upsert counts.
type BulkFornecedorConfigResponse struct {
	Criados     int `json:"criados"`
	Atualizados int `json:"atualizados"`
}

// FornecedorConfigResponse is the API representation of a supplier config.
type FornecedorConfigResponse struct {
	ConfigID     string  `json:"config_id"`
	NomeOriginal string  `json:"nome_original"`
	NomeExibicao *string `json:"nome_exibicao,omitempty"`
	Exibir       bool    `json:"exibir"`
}

// ToFornecedorConfigResponse converts a domain.FornecedorConfig.
func ToFornecedorConfigResponse(f *domain.FornecedorConfig) FornecedorConfigResponse {
	return FornecedorConfigResponse{
		ConfigID:     f.ConfigID,
		NomeOriginal: f.NomeOriginal,
		NomeExibicao: f.NomeExibicao,
		Exibir:       f.Exibir,
	}
}

// ListFornecedorConfigsResponse wraps the list of configs.
type ListFornecedorConfigsResponse struct {
	Configs []FornecedorConfigResponse `json:"configs"`
}

// ToListFornecedorConfigsResponse converts a slice of domain configs.
func ToListFornecedorConfigsResponse(fs []domain.FornecedorConfig) ListFornecedorConfigsResponse {
	out := make([]FornecedorConfigResponse, len(fs))
	for i := range fs {
		out[i] = ToFornecedorConfigResponse(&fs[i])
	}
	return ListFornecedorConfigsResponse{Configs: out}
}
