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

type PgxResponsavelRepository struct {
	db *pgxpool.Pool
}

func newPgxResponsavelRepository(db *pgxpool.Pool) portsrepo.ResponsavelRepository {
	return &PgxResponsavelRepository{db: db}
}

var _ portsrepo.ResponsavelRepository = (*PgxResponsavelRepository)(nil)

func (r *PgxResponsavelRepository) SaveResponsavel(ctx context.Context, resp domain.Responsavel) error {
	m := mapping.ToModelResponsavel(resp)
	query := `
        INSERT INTO responsaveis (responsavel_id, nome, nome_exibicao, orcamento_mensal, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		m.ResponsavelID,
		m.Nome,
		m.NomeExibicao,
		m.OrcamentoMensal,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save responsavel: %w", err)
	}
	return nil
}

func (r *PgxResponsavelRepository) FindResponsavelByID(ctx context.Context, responsavelID string) (*domain.Responsavel, error) {
	query := `
		SELECT responsavel_id, nome, nome_exibicao, orcamento_mensal, created_at, last_updated_at
		FROM responsaveis
		WHERE responsavel_id = $1;
	`
	return r.findOne(ctx, query, responsavelID)
}

func (r *PgxResponsavelRepository) FindResponsavelByNome(ctx context.Context, nome string) (*domain.Responsavel, error) {
	query := `
		SELECT responsavel_id, nome, nome_exibicao, orcamento_mensal, created_at, last_updated_at
		FROM responsaveis
		WHERE nome = $1;
	`
	return r.findOne(ctx, query, nome)
}

func (r *PgxResponsavelRepository) findOne(ctx context.Context, query string, arg any) (*domain.Responsavel, error) {
	var m models.Responsavel
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&m.ResponsavelID,
		&m.Nome,
		&m.NomeExibicao,
		&m.OrcamentoMensal,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find responsavel: %w", err)
	}
	d := mapping.ToDomainResponsavel(m)
	return &d, nil
}

func (r *PgxResponsavelRepository) ListResponsaveis(ctx context.Context) ([]domain.Responsavel, error) {
	query := `
		SELECT responsavel_id, nome, nome_exibicao, orcamento_mensal, created_at, last_updated_at
		FROM responsaveis
		ORDER BY nome ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list responsaveis: %w", err)
	}
	defer rows.Close()

	ms := []models.Responsavel{}
	for rows.Next() {
		var m models.Responsavel
		if err := rows.Scan(&m.ResponsavelID, &m.Nome, &m.NomeExibicao, &m.OrcamentoMensal, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan responsavel row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responsavel rows: %w", err)
	}
	return mapping.ToDomainResponsavelSlice(ms), nil
}

func (r *PgxResponsavelRepository) UpdateResponsavel(ctx context.Context, resp domain.Responsavel) error {
	m := mapping.ToModelResponsavel(resp)
	query := `
        UPDATE responsaveis
        SET nome = $2, nome_exibicao = $3, orcamento_mensal = $4, last_updated_at = $5
        WHERE responsavel_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.ResponsavelID,
		m.Nome,
		m.NomeExibicao,
		m.OrcamentoMensal,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update responsavel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteResponsavel removes the dimension row; fact rows go with it via
// ON DELETE CASCADE.
func (r *PgxResponsavelRepository) DeleteResponsavel(ctx context.Context, responsavelID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM responsaveis WHERE responsavel_id = $1;`, responsavelID)
	if err != nil {
		return fmt.Errorf("failed to delete responsavel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
