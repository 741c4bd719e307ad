package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transacao mirrors the transacoes table.
type Transacao struct {
	TransacaoID    string          `db:"transacao_id"`
	ResponsavelID  string          `db:"responsavel_id"`
	Data           time.Time       `db:"data"`
	Valor          decimal.Decimal `db:"valor"`
	DescricaoConta string          `db:"descricao_conta"`
	TxtDetalhe     *string         `db:"txt_detalhe"`
	Fornecedor     *string         `db:"fornecedor"`
	ArquivoOrigem  string          `db:"arquivo_origem"`
	DataImportacao time.Time       `db:"data_importacao"`

	// Joined from responsaveis for list endpoints; not a table column.
	ResponsavelNome string `db:"-"`
}
