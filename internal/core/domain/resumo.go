package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Aggregate row types returned by the summary repository. Names are always
// the RAW stored names; display overlays are applied by the service layer.

// TotalMes is the sum of valor for one month of a year.
type TotalMes struct {
	Mes   int             `json:"mes"`
	Total decimal.Decimal `json:"total"`
}

// TotalMesAno is a (year, month) bucket used for open-ended time series.
type TotalMesAno struct {
	Ano   int             `json:"ano"`
	Mes   int             `json:"mes"`
	Total decimal.Decimal `json:"total"`
}

// TotalDia is the sum of valor for one day of a month.
type TotalDia struct {
	Dia   int             `json:"dia"`
	Total decimal.Decimal `json:"total"`
}

// TotalSetor is the sum of valor for one responsavel.
type TotalSetor struct {
	Setor string          `json:"setor"`
	Total decimal.Decimal `json:"total"`
}

// TotalSetorMes is the sum of valor for one responsavel in one month.
type TotalSetorMes struct {
	Mes   int             `json:"mes"`
	Setor string          `json:"setor"`
	Total decimal.Decimal `json:"total"`
}

// TotalDescricao groups a sector's spend by account description.
type TotalDescricao struct {
	Descricao string          `json:"descricao"`
	Total     decimal.Decimal `json:"total"`
	Count     int             `json:"count"`
}

// TotalFornecedor is the aggregate spend of one supplier.
type TotalFornecedor struct {
	Fornecedor string          `json:"fornecedor"`
	Total      decimal.Decimal `json:"total"`
	Transacoes int             `json:"transacoes"`
}

// SetorFornecedor breaks a supplier's spend down by sector.
type SetorFornecedor struct {
	Setor string          `json:"setor"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// PeriodoFiltro restricts aggregate queries to a date window. Nil fields mean
// unfiltered. Ano/Mes are calendar filters; Inicio/Fim an inclusive range.
type PeriodoFiltro struct {
	Ano    *int
	Mes    *int
	Inicio *time.Time
	Fim    *time.Time
}

// FiltroAno builds a filter covering one whole year.
func FiltroAno(ano int) PeriodoFiltro {
	return PeriodoFiltro{Ano: &ano}
}

// FiltroMes builds a filter covering one month of a year.
func FiltroMes(ano, mes int) PeriodoFiltro {
	return PeriodoFiltro{Ano: &ano, Mes: &mes}
}

// FiltroIntervalo builds an inclusive date-range filter.
func FiltroIntervalo(inicio, fim time.Time) PeriodoFiltro {
	return PeriodoFiltro{Inicio: &inicio, Fim: &fim}
}
