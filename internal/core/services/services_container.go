package services

import (
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Importacao:       NewImportacaoService(repos.TransacaoRepo, cfg.ImportStrict),
		Resumo:           NewResumoService(repos.ResumoRepo, repos.ResponsavelRepo, repos.FornecedorConfigRepo),
		Responsavel:      NewResponsavelService(repos.ResponsavelRepo),
		FornecedorConfig: NewFornecedorConfigService(repos.FornecedorConfigRepo),
		Transacao:        NewTransacaoService(repos.TransacaoRepo),
		User:             NewUserService(repos.UserRepo),
	}
}
