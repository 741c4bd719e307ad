package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/custos-app/custos-backend/internal/apperrors"
	"github.com/custos-app/custos-backend/internal/core/domain"
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	"github.com/custos-app/custos-backend/internal/models"
	"github.com/custos-app/custos-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFornecedorConfigRepository struct {
	BaseRepository
}

func newPgxFornecedorConfigRepository(pool *pgxpool.Pool) portsrepo.FornecedorConfigRepository {
	return &PgxFornecedorConfigRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FornecedorConfigRepository = (*PgxFornecedorConfigRepository)(nil)

func (r *PgxFornecedorConfigRepository) SaveFornecedorConfig(ctx context.Context, f domain.FornecedorConfig) error {
	m := mapping.ToModelFornecedorConfig(f)
	query := `
        INSERT INTO fornecedor_config (config_id, nome_original, nome_exibicao, exibir, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ConfigID,
		m.NomeOriginal,
		m.NomeExibicao,
		m.Exibir,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save fornecedor config: %w", err)
	}
	return nil
}

func (r *PgxFornecedorConfigRepository) FindFornecedorConfigByID(ctx context.Context, configID string) (*domain.FornecedorConfig, error) {
	query := `
		SELECT config_id, nome_original, nome_exibicao, exibir, created_at, last_updated_at
		FROM fornecedor_config
		WHERE config_id = $1;
	`
	var m models.FornecedorConfig
	err := r.Pool.QueryRow(ctx, query, configID).Scan(
		&m.ConfigID,
		&m.NomeOriginal,
		&m.NomeExibicao,
		&m.Exibir,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fornecedor config by ID %s: %w", configID, err)
	}
	d := mapping.ToDomainFornecedorConfig(m)
	return &d, nil
}

func (r *PgxFornecedorConfigRepository) ListFornecedorConfigs(ctx context.Context) ([]domain.FornecedorConfig, error) {
	query := `
		SELECT config_id, nome_original, nome_exibicao, exibir, created_at, last_updated_at
		FROM fornecedor_config
		ORDER BY nome_original ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fornecedor configs: %w", err)
	}
	defer rows.Close()

	ms := []models.FornecedorConfig{}
	for rows.Next() {
		var m models.FornecedorConfig
		if err := rows.Scan(&m.ConfigID, &m.NomeOriginal, &m.NomeExibicao, &m.Exibir, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fornecedor config row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fornecedor config rows: %w", err)
	}
	return mapping.ToDomainFornecedorConfigSlice(ms), nil
}

func (r *PgxFornecedorConfigRepository) UpdateFornecedorConfig(ctx context.Context, f domain.FornecedorConfig) error {
	m := mapping.ToModelFornecedorConfig(f)
	query := `
        UPDATE fornecedor_config
        SET nome_exibicao = $2, exibir = $3, last_updated_at = $4
        WHERE config_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query, m.ConfigID, m.NomeExibicao, m.Exibir, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update fornecedor config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFornecedorConfigRepository) DeleteFornecedorConfig(ctx context.Context, configID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM fornecedor_config WHERE config_id = $1;`, configID)
	if err != nil {
		return fmt.Errorf("failed to delete fornecedor config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpsertFornecedorConfigs applies the whole batch in one transaction, keyed by
// nome_original. The xmax = 0 check on the returned row distinguishes a fresh
// insert from a conflict update.
func (r *PgxFornecedorConfigRepository) UpsertFornecedorConfigs(ctx context.Context, fs []domain.FornecedorConfig) (int, int, error) {
	if len(fs) == 0 {
		return 0, 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer r.Rollback(ctx, tx)

	query := `
        INSERT INTO fornecedor_config (config_id, nome_original, nome_exibicao, exibir, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (nome_original) DO UPDATE SET
            nome_exibicao = EXCLUDED.nome_exibicao,
            exibir = EXCLUDED.exibir,
            last_updated_at = EXCLUDED.last_updated_at
        RETURNING (xmax = 0) AS inserted;
    `
	criados, atualizados := 0, 0
	for _, f := range fs {
		m := mapping.ToModelFornecedorConfig(f)
		var inserted bool
		err := tx.QueryRow(ctx, query,
			m.ConfigID,
			m.NomeOriginal,
			m.NomeExibicao,
			m.Exibir,
			m.CreatedAt,
			m.LastUpdatedAt,
		).Scan(&inserted)
		if err != nil {
			return 0, 0, apperrors.NewAppError(500, "failed to upsert fornecedor config "+m.NomeOriginal, err)
		}
		if inserted {
			criados++
		} else {
			atualizados++
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, err
	}
	return criados, atualizados, nil
}
