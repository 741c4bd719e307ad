package pgsql

import (
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ResponsavelRepo:      newPgxResponsavelRepository(dbPool),
		TransacaoRepo:        newPgxTransacaoRepository(dbPool),
		FornecedorConfigRepo: newPgxFornecedorConfigRepository(dbPool),
		ResumoRepo:           newPgxResumoRepository(dbPool),
		UserRepo:             newPgxUserRepository(dbPool),
	}
}
