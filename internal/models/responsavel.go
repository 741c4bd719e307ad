package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Responsavel mirrors the responsaveis table.
type Responsavel struct {
	ResponsavelID   string          `db:"responsavel_id"`
	Nome            string          `db:"nome"`
	NomeExibicao    *string         `db:"nome_exibicao"`
	OrcamentoMensal decimal.Decimal `db:"orcamento_mensal"`
	CreatedAt       time.Time       `db:"created_at"`
	LastUpdatedAt   time.Time       `db:"last_updated_at"`
}
