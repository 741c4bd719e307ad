package dto

import "github.com/custos-app/custos-backend/internal/core/domain"

// ListTransacoesParams defines query parameters for listing transactions.
// Inicio/Fim are optional YYYY-MM-DD bounds.
type ListTransacoesParams struct {
	Inicio string `form:"inicio"`
	Fim    string `form:"fim"`
	Limit  int    `form:"limit,default=100"`
	Offset int    `form:"offset,default=0"`
}

// TransacaoResponse is the API representation of one fact row.
type TransacaoResponse struct {
	TransacaoID     string  `json:"transacao_id"`
	ResponsavelID   string  `json:"responsavel_id"`
	ResponsavelNome string  `json:"responsavel_nome"`
	Data            string  `json:"data"`
	Valor           float64 `json:"valor"`
	DescricaoConta  string  `json:"descricao_conta"`
	TxtDetalhe      string  `json:"txt_detalhe,omitempty"`
	Fornecedor      *string `json:"fornecedor,omitempty"`
	ArquivoOrigem   string  `json:"arquivo_origem"`
}

// ToTransacaoResponse converts a domain.Transacao.
func ToTransacaoResponse(t *domain.Transacao) TransacaoResponse {
	return TransacaoResponse{
		TransacaoID:     t.TransacaoID,
		ResponsavelID:   t.ResponsavelID,
		ResponsavelNome: t.ResponsavelNome,
		Data:            t.Data.Format("2006-01-02"),
		Valor:           t.Valor.InexactFloat64(),
		DescricaoConta:  t.DescricaoConta,
		TxtDetalhe:      t.TxtDetalhe,
		Fornecedor:      t.Fornecedor,
		ArquivoOrigem:   t.ArquivoOrigem,
	}
}

// ListTransacoesResponse wraps the transaction listing.
type ListTransacoesResponse struct {
	Transacoes []TransacaoResponse `json:"transacoes"`
}

// ToListTransacoesResponse converts a slice of domain.Transacao.
func ToListTransacoesResponse(ts []domain.Transacao) ListTransacoesResponse {
	out := make([]TransacaoResponse, len(ts))
	for i := range ts {
		out[i] = ToTransacaoResponse(&ts[i])
	}
	return ListTransacoesResponse{Transacoes: out}
}
