package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/custos-app/custos-backend/internal/core/domain"
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	"github.com/custos-app/custos-backend/internal/models"
	"github.com/custos-app/custos-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// temFornecedor keeps only fact rows that carry a supplier name.
const temFornecedor = "t.fornecedor IS NOT NULL AND t.fornecedor <> ''"

type PgxResumoRepository struct {
	db *pgxpool.Pool
}

func newPgxResumoRepository(db *pgxpool.Pool) portsrepo.ResumoRepository {
	return &PgxResumoRepository{db: db}
}

var _ portsrepo.ResumoRepository = (*PgxResumoRepository)(nil)

func (r *PgxResumoRepository) TotaisPorMes(ctx context.Context, ano int) ([]domain.TotalMes, error) {
	query := `
		SELECT EXTRACT(MONTH FROM t.data)::int AS mes, COALESCE(SUM(t.valor), 0) AS total
		FROM transacoes t
		WHERE EXTRACT(YEAR FROM t.data)::int = $1
		GROUP BY mes
		ORDER BY mes ASC;
	`
	return scanTotaisMes(ctx, r.db, query, ano)
}

func (r *PgxResumoRepository) TotaisPorSetorMes(ctx context.Context, ano int) ([]domain.TotalSetorMes, error) {
	query := `
		SELECT EXTRACT(MONTH FROM t.data)::int AS mes, r.nome, COALESCE(SUM(t.valor), 0) AS total
		FROM transacoes t
		JOIN responsaveis r ON t.responsavel_id = r.responsavel_id
		WHERE EXTRACT(YEAR FROM t.data)::int = $1
		GROUP BY mes, r.nome
		ORDER BY mes ASC, r.nome ASC;
	`
	rows, err := r.db.Query(ctx, query, ano)
	if err != nil {
		return nil, fmt.Errorf("failed to query sector month totals: %w", err)
	}
	defer rows.Close()

	out := []domain.TotalSetorMes{}
	for rows.Next() {
		var t domain.TotalSetorMes
		if err := rows.Scan(&t.Mes, &t.Setor, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan sector month row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgxResumoRepository) MesesComDados(ctx context.Context, ano int) ([]int, error) {
	query := `
		SELECT DISTINCT EXTRACT(MONTH FROM data)::int AS mes
		FROM transacoes
		WHERE EXTRACT(YEAR FROM data)::int = $1
		ORDER BY mes ASC;
	`
	return scanInts(ctx, r.db, query, ano)
}

func (r *PgxResumoRepository) TotaisPorDia(ctx context.Context, ano, mes int) ([]domain.TotalDia, error) {
	query := `
		SELECT EXTRACT(DAY FROM data)::int AS dia, COALESCE(SUM(valor), 0) AS total
		FROM transacoes
		WHERE EXTRACT(YEAR FROM data)::int = $1 AND EXTRACT(MONTH FROM data)::int = $2
		GROUP BY dia
		ORDER BY dia ASC;
	`
	rows, err := r.db.Query(ctx, query, ano, mes)
	if err != nil {
		return nil, fmt.Errorf("failed to query day totals: %w", err)
	}
	defer rows.Close()

	out := []domain.TotalDia{}
	for rows.Next() {
		var t domain.TotalDia
		if err := rows.Scan(&t.Dia, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan day total row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgxResumoRepository) DiasComDados(ctx context.Context, ano, mes int) ([]int, error) {
	query := `
		SELECT DISTINCT EXTRACT(DAY FROM data)::int AS dia
		FROM transacoes
		WHERE EXTRACT(YEAR FROM data)::int = $1 AND EXTRACT(MONTH FROM data)::int = $2
		ORDER BY dia ASC;
	`
	return scanInts(ctx, r.db, query, ano, mes)
}

func (r *PgxResumoRepository) TotalPeriodo(ctx context.Context, f domain.PeriodoFiltro) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(t.valor), 0) FROM transacoes t`
	args := []any{}
	conds, args := montaFiltro(f, args, "t.data")
	query += whereClause(conds) + ";"
	return scanTotal(ctx, r.db, query, args...)
}

func (r *PgxResumoRepository) TotalFornecedoresPeriodo(ctx context.Context, f domain.PeriodoFiltro) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(t.valor), 0) FROM transacoes t WHERE ` + temFornecedor
	args := []any{}
	conds, args := montaFiltro(f, args, "t.data")
	query += andClause(conds) + ";"
	return scanTotal(ctx, r.db, query, args...)
}

func (r *PgxResumoRepository) TotaisPorSetor(ctx context.Context, f domain.PeriodoFiltro, limite int) ([]domain.TotalSetor, error) {
	query := `
		SELECT r.nome, COALESCE(SUM(t.valor), 0) AS total
		FROM transacoes t
		JOIN responsaveis r ON t.responsavel_id = r.responsavel_id
	`
	args := []any{}
	conds, args := montaFiltro(f, args, "t.data")
	query += whereClause(conds)
	query += " GROUP BY r.nome ORDER BY total DESC, r.nome ASC"
	query += limitClause(&args, limite) + ";"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sector totals: %w", err)
	}
	defer rows.Close()

	out := []domain.TotalSetor{}
	for rows.Next() {
		var t domain.TotalSetor
		if err := rows.Scan(&t.Setor, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan sector total row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgxResumoRepository) DetalhesSetor(ctx context.Context, setor string, f domain.PeriodoFiltro) ([]domain.TotalDescricao, error) {
	query := `
		SELECT t.descricao_conta, COALESCE(SUM(t.valor), 0) AS total, COUNT(*)::int AS qtd
		FROM transacoes t
		JOIN responsaveis r ON t.responsavel_id = r.responsavel_id
		WHERE r.nome = $1
	`
	args := []any{setor}
	conds, args := montaFiltro(f, args, "t.data")
	query += andClause(conds)
	query += " GROUP BY t.descricao_conta ORDER BY total DESC, t.descricao_conta ASC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sector details: %w", err)
	}
	defer rows.Close()

	out := []domain.TotalDescricao{}
	for rows.Next() {
		var t domain.TotalDescricao
		if err := rows.Scan(&t.Descricao, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan sector detail row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgxResumoRepository) TotaisPorFornecedor(ctx context.Context, f domain.PeriodoFiltro, limite int) ([]domain.TotalFornecedor, error) {
	query := `
		SELECT t.fornecedor, COALESCE(SUM(t.valor), 0) AS total, COUNT(*)::int AS qtd
		FROM transacoes t
		WHERE ` + temFornecedor
	args := []any{}
	conds, args := montaFiltro(f, args, "t.data")
	query += andClause(conds)
	query += " GROUP BY t.fornecedor ORDER BY total DESC, t.fornecedor ASC"
	query += limitClause(&args, limite) + ";"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier totals: %w", err)
	}
	defer rows.Close()

	out := []domain.TotalFornecedor{}
	for rows.Next() {
		var t domain.TotalFornecedor
		if err := rows.Scan(&t.Fornecedor, &t.Total, &t.Transacoes); err != nil {
			return nil, fmt.Errorf("failed to scan supplier total row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgxResumoRepository) SetoresPorFornecedor(ctx context.Context, fornecedor string, f domain.PeriodoFiltro, limite int) ([]domain.SetorFornecedor, error) {
	query := `
		SELECT r.nome, COALESCE(SUM(t.valor), 0) AS total, COUNT(*)::int AS qtd
		FROM transacoes t
		JOIN responsaveis r ON t.responsavel_id = r.responsavel_id
		WHERE t.fornecedor = $1
	`
	args := []any{fornecedor}
	conds, args := montaFiltro(f, args, "t.data")
	query += andClause(conds)
	query += " GROUP BY r.nome ORDER BY total DESC, r.nome ASC"
	query += limitClause(&args, limite) + ";"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier sectors: %w", err)
	}
	defer rows.Close()

	out := []domain.SetorFornecedor{}
	for rows.Next() {
		var t domain.SetorFornecedor
		if err := rows.Scan(&t.Setor, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan supplier sector row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgxResumoRepository) EvolucaoMensalFornecedor(ctx context.Context, fornecedor string, f domain.PeriodoFiltro) ([]domain.TotalMes, error) {
	query := `
		SELECT EXTRACT(MONTH FROM t.data)::int AS mes, COALESCE(SUM(t.valor), 0) AS total
		FROM transacoes t
		WHERE t.fornecedor = $1
	`
	args := []any{fornecedor}
	conds, args := montaFiltro(f, args, "t.data")
	query += andClause(conds)
	query += " GROUP BY mes ORDER BY mes ASC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier monthly evolution: %w", err)
	}
	defer rows.Close()

	out := []domain.TotalMes{}
	for rows.Next() {
		var t domain.TotalMes
		if err := rows.Scan(&t.Mes, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan supplier month row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgxResumoRepository) TransacoesFornecedor(ctx context.Context, fornecedor string, f domain.PeriodoFiltro) ([]domain.Transacao, error) {
	query := `
		SELECT t.transacao_id, t.responsavel_id, r.nome, t.data, t.valor,
		       t.descricao_conta, t.txt_detalhe, t.fornecedor, t.arquivo_origem, t.data_importacao
		FROM transacoes t
		JOIN responsaveis r ON t.responsavel_id = r.responsavel_id
		WHERE t.fornecedor = $1
	`
	args := []any{fornecedor}
	conds, args := montaFiltro(f, args, "t.data")
	query += andClause(conds)
	query += " ORDER BY t.data DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.Transacao{}
	for rows.Next() {
		var m models.Transacao
		if err := rows.Scan(
			&m.TransacaoID, &m.ResponsavelID, &m.ResponsavelNome, &m.Data, &m.Valor,
			&m.DescricaoConta, &m.TxtDetalhe, &m.Fornecedor, &m.ArquivoOrigem, &m.DataImportacao,
		); err != nil {
			return nil, fmt.Errorf("failed to scan supplier transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier transaction rows: %w", err)
	}
	return mapping.ToDomainTransacaoSlice(ms), nil
}

func (r *PgxResumoRepository) FornecedoresUnicos(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT t.fornecedor
		FROM transacoes t
		WHERE ` + temFornecedor + `
		ORDER BY t.fornecedor ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct suppliers: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, fmt.Errorf("failed to scan supplier name: %w", err)
		}
		out = append(out, nome)
	}
	return out, rows.Err()
}

func (r *PgxResumoRepository) TotaisPorTempo(ctx context.Context, f domain.PeriodoFiltro) ([]domain.TotalMesAno, error) {
	query := `
		SELECT EXTRACT(YEAR FROM t.data)::int AS ano, EXTRACT(MONTH FROM t.data)::int AS mes,
		       COALESCE(SUM(t.valor), 0) AS total
		FROM transacoes t
	`
	args := []any{}
	conds, args := montaFiltro(f, args, "t.data")
	query += whereClause(conds)
	query += " GROUP BY ano, mes ORDER BY ano ASC, mes ASC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time buckets: %w", err)
	}
	defer rows.Close()

	out := []domain.TotalMesAno{}
	for rows.Next() {
		var t domain.TotalMesAno
		if err := rows.Scan(&t.Ano, &t.Mes, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan time bucket row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func limitClause(args *[]any, limite int) string {
	if limite <= 0 {
		return ""
	}
	*args = append(*args, limite)
	return " LIMIT $" + strconv.Itoa(len(*args))
}

func scanTotaisMes(ctx context.Context, db *pgxpool.Pool, query string, args ...any) ([]domain.TotalMes, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query month totals: %w", err)
	}
	defer rows.Close()

	out := []domain.TotalMes{}
	for rows.Next() {
		var t domain.TotalMes
		if err := rows.Scan(&t.Mes, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan month total row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanInts(ctx context.Context, db *pgxpool.Pool, query string, args ...any) ([]int, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query int column: %w", err)
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan int value: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanTotal(ctx context.Context, db *pgxpool.Pool, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to query period total: %w", err)
	}
	return total, nil
}
