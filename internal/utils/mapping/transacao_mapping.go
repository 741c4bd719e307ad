package mapping

import (
	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/custos-app/custos-backend/internal/models"
)

// ToDomainTransacao converts a model Transacao to a domain Transacao
func ToDomainTransacao(m models.Transacao) domain.Transacao {
	d := domain.Transacao{
		TransacaoID:     m.TransacaoID,
		ResponsavelID:   m.ResponsavelID,
		ResponsavelNome: m.ResponsavelNome,
		Data:            m.Data,
		Valor:           m.Valor,
		DescricaoConta:  m.DescricaoConta,
		Fornecedor:      m.Fornecedor,
		ArquivoOrigem:   m.ArquivoOrigem,
		DataImportacao:  m.DataImportacao,
	}
	if m.TxtDetalhe != nil {
		d.TxtDetalhe = *m.TxtDetalhe
	}
	return d
}

// ToDomainTransacaoSlice converts a slice of model Transacao to domain
func ToDomainTransacaoSlice(ms []models.Transacao) []domain.Transacao {
	ds := make([]domain.Transacao, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransacao(m)
	}
	return ds
}
