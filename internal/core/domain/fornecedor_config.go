package domain

import "time"

// FornecedorConfig is a display overlay for a supplier name. Suppliers are
// plain strings on fact rows, so the overlay is matched by string equality at
// query time, not by foreign key.
type FornecedorConfig struct {
	ConfigID      string    `json:"configID"`
	NomeOriginal  string    `json:"nomeOriginal"`
	NomeExibicao  *string   `json:"nomeExibicao,omitempty"`
	Exibir        bool      `json:"exibir"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// NomeParaExibicao resolves the display name, falling back to the raw name.
func (f FornecedorConfig) NomeParaExibicao() string {
	if f.NomeExibicao != nil && *f.NomeExibicao != "" {
		return *f.NomeExibicao
	}
	return f.NomeOriginal
}
