package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custos-app/custos-backend/internal/apperrors"
	"github.com/custos-app/custos-backend/internal/core/domain"
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/internal/middleware"
	"github.com/custos-app/custos-backend/internal/utils/tabular"
)

// colunasNecessarias are the headers an upload must carry. TXT and Fornecedor
// are optional extras.
var colunasNecessarias = []string{"MA", "TRANSDATE", "AMOUNTMST", "Descrição Conta"}

type ImportacaoService struct {
	transacaoRepo portsrepo.TransacaoRepository
	estrito       bool
}

func NewImportacaoService(transacaoRepo portsrepo.TransacaoRepository, estrito bool) *ImportacaoService {
	return &ImportacaoService{transacaoRepo: transacaoRepo, estrito: estrito}
}

var _ portssvc.ImportacaoSvcFacade = (*ImportacaoService)(nil)

func (s *ImportacaoService) ImportarArquivo(ctx context.Context, nomeArquivo string, r io.Reader) (domain.ResultadoImportacao, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tabela, err := tabular.Parse(nomeArquivo, r)
	if err != nil {
		if errors.Is(err, tabular.ErrUnsupportedFormat) {
			return domain.ResultadoImportacao{}, apperrors.NewValidationError(
				"Formato não suportado. Use .xlsx ou .csv")
		}
		return domain.ResultadoImportacao{}, apperrors.NewValidationError(
			fmt.Sprintf("Erro ao ler arquivo: %v", err))
	}

	faltando := []string{}
	for _, col := range colunasNecessarias {
		if !tabela.HasColumn(col) {
			faltando = append(faltando, col)
		}
	}
	if len(faltando) > 0 {
		return domain.ResultadoImportacao{}, apperrors.NewValidationError(fmt.Sprintf(
			"Colunas faltando: %s. Colunas encontradas: %s",
			strings.Join(faltando, ", "), strings.Join(tabela.Headers, ", ")))
	}

	temTxt := tabela.HasColumn("TXT")
	temFornecedor := tabela.HasColumn("Fornecedor")

	linhas := make([]domain.NovaTransacao, 0, tabela.Len())
	for i := 0; i < tabela.Len(); i++ {
		ma := tabela.Cell(i, "MA")
		if ma == "" || strings.EqualFold(ma, "nan") {
			continue
		}

		data, err := tabular.ParseData(tabela.Cell(i, "TRANSDATE"))
		if err != nil {
			return domain.ResultadoImportacao{}, apperrors.NewValidationError(
				fmt.Sprintf("Data inválida na linha %d: %v", i+2, err))
		}
		valor, err := tabular.ParseValor(tabela.Cell(i, "AMOUNTMST"))
		if err != nil {
			return domain.ResultadoImportacao{}, apperrors.NewValidationError(
				fmt.Sprintf("Valor inválido na linha %d: %v", i+2, err))
		}

		nova := domain.NovaTransacao{
			ResponsavelNome: ma,
			Data:            data,
			Valor:           valor,
			DescricaoConta:  tabela.Cell(i, "Descrição Conta"),
		}
		if temTxt {
			if txt := tabela.Cell(i, "TXT"); txt != "" && !strings.EqualFold(txt, "nan") {
				nova.TxtDetalhe = txt
			}
		}
		if temFornecedor {
			if f := tabela.Cell(i, "Fornecedor"); f != "" && !strings.EqualFold(f, "nan") {
				nova.Fornecedor = &f
			}
		}
		linhas = append(linhas, nova)
	}

	if len(linhas) == 0 {
		return domain.ResultadoImportacao{}, apperrors.NewValidationError(
			"Nenhuma linha válida encontrada no arquivo")
	}

	res, err := s.transacaoRepo.ImportarLote(ctx, nomeArquivo, linhas, s.estrito)
	if err != nil {
		return domain.ResultadoImportacao{}, fmt.Errorf("failed to import batch from %s: %w", nomeArquivo, err)
	}

	logger.Info("import finished",
		"arquivo", nomeArquivo,
		"linhas_importadas", res.LinhasImportadas,
		"responsaveis_criados", res.ResponsaveisCriados,
		"datas_substituidas", res.DatasSubstituidas,
	)
	return res, nil
}
