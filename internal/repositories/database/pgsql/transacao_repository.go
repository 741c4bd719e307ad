package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/custos-app/custos-backend/internal/apperrors"
	"github.com/custos-app/custos-backend/internal/core/domain"
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	"github.com/custos-app/custos-backend/internal/models"
	"github.com/custos-app/custos-backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// loteInsercao bounds the number of rows per bulk insert statement.
const loteInsercao = 2000

type PgxTransacaoRepository struct {
	BaseRepository
}

func newPgxTransacaoRepository(pool *pgxpool.Pool) portsrepo.TransacaoRepository {
	return &PgxTransacaoRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransacaoRepository = (*PgxTransacaoRepository)(nil)

// ImportarLote runs the ingestion pipeline inside one database transaction:
// resolve the responsavel dimension for the batch, purge existing rows whose
// date appears in the batch, then bulk insert the new rows chunked by
// loteInsercao. Any failure rolls back the whole import.
func (r *PgxTransacaoRepository) ImportarLote(ctx context.Context, arquivo string, linhas []domain.NovaTransacao, estrito bool) (domain.ResultadoImportacao, error) {
	var res domain.ResultadoImportacao
	if len(linhas) == 0 {
		return res, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return res, err
	}
	// Ignored if the transaction commits successfully.
	defer r.Rollback(ctx, tx)

	agora := time.Now()

	nomes, datas := chavesDoLote(linhas)

	mapa, criados, err := resolverResponsaveis(ctx, tx, nomes, agora)
	if err != nil {
		return res, err
	}
	res.ResponsaveisCriados = criados

	// Replace-by-date-set: every stored row on an incoming date goes away
	// before the new rows land, making re-imports idempotent per date. The
	// cast keeps the comparison on calendar dates, not timestamps.
	if _, err := tx.Exec(ctx, `DELETE FROM transacoes WHERE data = ANY($1::date[]);`, datas); err != nil {
		return res, apperrors.NewAppError(500, "failed to delete transactions for incoming dates", err)
	}
	res.DatasSubstituidas = len(datas)

	colunas := []string{
		"transacao_id", "responsavel_id", "data", "valor",
		"descricao_conta", "txt_detalhe", "fornecedor",
		"arquivo_origem", "data_importacao",
	}
	valores, puladas, err := materializaLote(linhas, mapa, arquivo, agora, estrito)
	if err != nil {
		return res, err
	}
	res.LinhasSemResponsavel = puladas

	for inicio := 0; inicio < len(valores); inicio += loteInsercao {
		fim := inicio + loteInsercao
		if fim > len(valores) {
			fim = len(valores)
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{"transacoes"}, colunas, pgx.CopyFromRows(valores[inicio:fim]))
		if err != nil {
			return res, apperrors.NewAppError(500, "failed to bulk insert transactions", err)
		}
		res.LinhasImportadas += int(n)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return res, err
	}
	return res, nil
}

// chavesDoLote returns the distinct responsavel names and the distinct
// calendar dates (ISO form) of a batch, in first-seen order. Keying the dates
// by their formatted day collapses differing times-of-day onto one date.
func chavesDoLote(linhas []domain.NovaTransacao) (nomes, datas []string) {
	vistos := make(map[string]struct{}, len(linhas))
	datasVistas := make(map[string]struct{})
	for _, l := range linhas {
		if _, ok := vistos[l.ResponsavelNome]; !ok {
			vistos[l.ResponsavelNome] = struct{}{}
			nomes = append(nomes, l.ResponsavelNome)
		}
		dia := l.Data.Format("2006-01-02")
		if _, ok := datasVistas[dia]; !ok {
			datasVistas[dia] = struct{}{}
			datas = append(datas, dia)
		}
	}
	return nomes, datas
}

// materializaLote turns the batch into bulk-insert rows, resolving the
// responsavel FK through mapa. Every name in the batch was resolved just
// before, so a miss is an internal inconsistency: strict mode aborts the
// import, lenient mode skips the row and reports how many were skipped.
func materializaLote(linhas []domain.NovaTransacao, mapa map[string]domain.Responsavel, arquivo string, agora time.Time, estrito bool) ([][]any, int, error) {
	valores := make([][]any, 0, len(linhas))
	puladas := 0
	for _, l := range linhas {
		resp, ok := mapa[l.ResponsavelNome]
		if !ok {
			if estrito {
				return nil, 0, apperrors.NewAppError(500, "responsavel "+strconv.Quote(l.ResponsavelNome)+" missing from resolved map", nil)
			}
			puladas++
			continue
		}
		var detalhe *string
		if l.TxtDetalhe != "" {
			d := l.TxtDetalhe
			detalhe = &d
		}
		valores = append(valores, []any{
			uuid.NewString(), resp.ResponsavelID, l.Data, l.Valor,
			l.DescricaoConta, detalhe, l.Fornecedor,
			arquivo, agora,
		})
	}
	return valores, puladas, nil
}

// resolverResponsaveis fetches every existing responsavel whose name is in
// nomes with one query and creates the complement with one batch, completing
// the name->record map. Round trips stay constant regardless of batch size.
// Existing records are never updated here.
func resolverResponsaveis(ctx context.Context, tx pgx.Tx, nomes []string, agora time.Time) (map[string]domain.Responsavel, int, error) {
	mapa := make(map[string]domain.Responsavel, len(nomes))

	rows, err := tx.Query(ctx, `SELECT responsavel_id, nome, nome_exibicao, orcamento_mensal, created_at, last_updated_at FROM responsaveis WHERE nome = ANY($1);`, nomes)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query existing responsaveis", err)
	}
	for rows.Next() {
		var m models.Responsavel
		if err := rows.Scan(&m.ResponsavelID, &m.Nome, &m.NomeExibicao, &m.OrcamentoMensal, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			rows.Close()
			return nil, 0, apperrors.NewAppError(500, "failed to scan responsavel row", err)
		}
		mapa[m.Nome] = mapping.ToDomainResponsavel(m)
	}
	// The connection must be free of open rows before the batch goes out.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating responsavel rows", err)
	}

	batch := &pgx.Batch{}
	criados := 0
	for _, nome := range nomes {
		if _, ok := mapa[nome]; ok {
			continue
		}
		novo := domain.Responsavel{
			ResponsavelID: uuid.NewString(),
			Nome:          nome,
			CreatedAt:     agora,
			LastUpdatedAt: agora,
		}
		batch.Queue(
			`INSERT INTO responsaveis (responsavel_id, nome, orcamento_mensal, created_at, last_updated_at) VALUES ($1, $2, 0, $3, $3);`,
			novo.ResponsavelID, novo.Nome, agora,
		)
		mapa[nome] = novo
		criados++
	}
	if criados > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to batch insert new responsaveis", err)
		}
	}

	return mapa, criados, nil
}

// ListTransacoes returns fact rows joined with their responsavel name,
// optionally bounded by an inclusive date range, newest first.
func (r *PgxTransacaoRepository) ListTransacoes(ctx context.Context, filtro domain.PeriodoFiltro, limit, offset int) ([]domain.Transacao, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT t.transacao_id, t.responsavel_id, r.nome, t.data, t.valor,
		       t.descricao_conta, t.txt_detalhe, t.fornecedor, t.arquivo_origem, t.data_importacao
		FROM transacoes t
		JOIN responsaveis r ON t.responsavel_id = r.responsavel_id
	`
	args := []any{}
	conds, args := montaFiltro(filtro, args, "t.data")
	query += whereClause(conds)
	query += " ORDER BY t.data DESC, t.data_importacao DESC"
	args = append(args, limit)
	query += " LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transacoes := []models.Transacao{}
	for rows.Next() {
		var m models.Transacao
		if err := rows.Scan(
			&m.TransacaoID, &m.ResponsavelID, &m.ResponsavelNome, &m.Data, &m.Valor,
			&m.DescricaoConta, &m.TxtDetalhe, &m.Fornecedor, &m.ArquivoOrigem, &m.DataImportacao,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transacoes = append(transacoes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransacaoSlice(transacoes), nil
}
