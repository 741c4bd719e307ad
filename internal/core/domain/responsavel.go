package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Responsavel is the cost-center dimension (source column "MA").
// Rows are created lazily during ingestion and never deleted by the pipeline.
type Responsavel struct {
	ResponsavelID   string          `json:"responsavelID"`
	Nome            string          `json:"nome"` // unique raw name from the source file
	NomeExibicao    *string         `json:"nomeExibicao,omitempty"`
	OrcamentoMensal decimal.Decimal `json:"orcamentoMensal"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// NomeParaExibicao resolves the display name, falling back to the raw name.
func (r Responsavel) NomeParaExibicao() string {
	if r.NomeExibicao != nil && *r.NomeExibicao != "" {
		return *r.NomeExibicao
	}
	return r.Nome
}
