package dto

// Summary response shapes. Amounts are serialized as JSON numbers (float64),
// matching what the charting frontend consumes; internal aggregation is done
// with decimals and only converted at this boundary.

// TotalMesDTO is one month bucket of a yearly series.
type TotalMesDTO struct {
	Mes   int     `json:"mes"`
	Total float64 `json:"total"`
}

// TotalSetorMesDTO is one (month, sector) bucket.
type TotalSetorMesDTO struct {
	Mes   int     `json:"mes"`
	Setor string  `json:"setor"`
	Total float64 `json:"total"`
}

// TotalDiaDTO is one day bucket of a monthly series.
type TotalDiaDTO struct {
	Dia   int     `json:"dia"`
	Total float64 `json:"total"`
}

// TotalSetorDTO is one sector total.
type TotalSetorDTO struct {
	Setor string  `json:"setor"`
	Total float64 `json:"total"`
}

// TotaisAnoDTO summarizes a year.
type TotaisAnoDTO struct {
	Ano           int     `json:"ano"`
	TotalAno      float64 `json:"total_ano"`
	MesesComDados []int   `json:"meses_com_dados"`
}

// ResumoMensalResponse is the payload of GET /api/resumo-mensal/.
type ResumoMensalResponse struct {
	PorMes      []TotalMesDTO      `json:"por_mes"`
	PorSetorMes []TotalSetorMesDTO `json:"por_setor_mes"`
	Totais      TotaisAnoDTO       `json:"totais"`
}

// TotaisMesDTO summarizes one month of a year.
type TotaisMesDTO struct {
	Mes          int     `json:"mes"`
	Ano          int     `json:"ano"`
	TotalMes     float64 `json:"total_mes"`
	DiasComDados []int   `json:"dias_com_dados"`
}

// ResumoDiarioResponse is the payload of GET /api/resumo-diario/.
type ResumoDiarioResponse struct {
	PorDia   []TotalDiaDTO   `json:"por_dia"`
	PorSetor []TotalSetorDTO `json:"por_setor"`
	Totais   TotaisMesDTO    `json:"totais"`
}

// DetalheSetorDTO is one account-description group of a sector drill-down.
type DetalheSetorDTO struct {
	Descricao string  `json:"descricao"`
	Total     float64 `json:"total"`
	Count     int     `json:"count"`
}

// FornecedorTotalDTO is one supplier in the supplier summary. Fornecedor is
// the display name; FornecedorOriginal always carries the raw stored name so
// drill-downs never need to reverse-map a display string.
type FornecedorTotalDTO struct {
	Fornecedor         string  `json:"fornecedor"`
	FornecedorOriginal string  `json:"fornecedor_original"`
	Total              float64 `json:"total"`
	Transacoes         int     `json:"transacoes"`
}

// ResumoFornecedoresResponse is the payload of GET /api/resumo-fornecedores/
// and of the monthly variant. Map keys are supplier display names.
type ResumoFornecedoresResponse struct {
	PorFornecedor  []FornecedorTotalDTO       `json:"por_fornecedor"`
	PorSetor       map[string][]TotalSetorDTO `json:"por_setor"`
	EvolucaoMensal map[string]map[int]float64 `json:"evolucao_mensal"`
	TotalAno       float64                    `json:"total_ano"`
	Ano            int                        `json:"ano"`
	Mes            *int                       `json:"mes,omitempty"`
}

// DetalheFornecedorDTO is one sector group of a supplier drill-down.
type DetalheFornecedorDTO struct {
	Setor string  `json:"setor"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// TransacaoFornecedorDTO is one fact row of a supplier listing.
type TransacaoFornecedorDTO struct {
	Data           string  `json:"data"`
	Valor          float64 `json:"valor"`
	DescricaoConta string  `json:"descricao_conta"`
	TxtDetalhe     string  `json:"txt_detalhe,omitempty"`
	Setor          string  `json:"setor"`
}

// NomeTotalDTO is one named total of the general summary.
type NomeTotalDTO struct {
	Nome  string  `json:"nome"`
	Total float64 `json:"total"`
}

// ResumoGeralResponse is the payload of GET /api/resumo-geral/.
type ResumoGeralResponse struct {
	TopSetores      []NomeTotalDTO `json:"top_setores"`
	TopFornecedores []NomeTotalDTO `json:"top_fornecedores"`
	TotalGeral      float64        `json:"total_geral"`
	Periodo         string         `json:"periodo"`
	Ano             int            `json:"ano"`
	Mes             int            `json:"mes"`
}

// SetorResumoDTO is one slice of the dashboard sector breakdown.
type SetorResumoDTO struct {
	ResponsavelNome string  `json:"responsavel_nome"`
	Total           float64 `json:"total"`
}

// TempoTotalDTO is one labeled point of the dashboard time series.
type TempoTotalDTO struct {
	Nome  string  `json:"nome"`
	Total float64 `json:"total"`
}

// DashboardResumoResponse is the payload of GET /api/dashboard-resumo/.
type DashboardResumoResponse struct {
	TotalGasto  float64          `json:"total_gasto"`
	ResumoSetor []SetorResumoDTO `json:"resumo_setor"`
	ResumoTempo []TempoTotalDTO  `json:"resumo_tempo"`
}

// FornecedoresUnicosResponse lists distinct supplier names on fact rows.
type FornecedoresUnicosResponse struct {
	Fornecedores []string `json:"fornecedores"`
}
