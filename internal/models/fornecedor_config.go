package models

import "time"

// FornecedorConfig mirrors the fornecedor_config table.
type FornecedorConfig struct {
	ConfigID      string    `db:"config_id"`
	NomeOriginal  string    `db:"nome_original"`
	NomeExibicao  *string   `db:"nome_exibicao"`
	Exibir        bool      `db:"exibir"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
