package services

// ServiceContainer holds all service interfaces for injection into handlers.
type ServiceContainer struct {
	Importacao       ImportacaoSvcFacade
	Resumo           ResumoSvcFacade
	Responsavel      ResponsavelSvcFacade
	FornecedorConfig FornecedorConfigSvcFacade
	Transacao        TransacaoSvcFacade
	User             UserSvcFacade
}
