package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transacao is one ingested fact row. Every transacao belongs to exactly one
// Responsavel; rows are created only through the import pipeline.
type Transacao struct {
	TransacaoID     string          `json:"transacaoID"`
	ResponsavelID   string          `json:"responsavelID"`
	ResponsavelNome string          `json:"responsavelNome,omitempty"`
	Data            time.Time       `json:"data"`
	Valor           decimal.Decimal `json:"valor"` // signed; reversals are negative
	DescricaoConta  string          `json:"descricaoConta"`
	TxtDetalhe      string          `json:"txtDetalhe,omitempty"`
	Fornecedor      *string         `json:"fornecedor,omitempty"`
	ArquivoOrigem   string          `json:"arquivoOrigem"`
	DataImportacao  time.Time       `json:"dataImportacao"`
}

// NovaTransacao is a cleaned spreadsheet row ready for bulk loading, before
// the responsavel foreign key has been resolved.
type NovaTransacao struct {
	ResponsavelNome string
	Data            time.Time
	Valor           decimal.Decimal
	DescricaoConta  string
	TxtDetalhe      string
	Fornecedor      *string
}

// ResultadoImportacao reports what one batch import did.
type ResultadoImportacao struct {
	LinhasImportadas     int
	ResponsaveisCriados  int
	DatasSubstituidas    int
	LinhasSemResponsavel int
}
