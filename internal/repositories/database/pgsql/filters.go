package pgsql

import (
	"strconv"
	"strings"

	"github.com/custos-app/custos-backend/internal/core/domain"
)

// montaFiltro appends WHERE conditions for a period filter against the given
// date column, numbering placeholders after the args already collected.
func montaFiltro(f domain.PeriodoFiltro, args []any, col string) ([]string, []any) {
	conds := []string{}
	if f.Ano != nil {
		args = append(args, *f.Ano)
		conds = append(conds, "EXTRACT(YEAR FROM "+col+")::int = $"+strconv.Itoa(len(args)))
	}
	if f.Mes != nil {
		args = append(args, *f.Mes)
		conds = append(conds, "EXTRACT(MONTH FROM "+col+")::int = $"+strconv.Itoa(len(args)))
	}
	if f.Inicio != nil {
		args = append(args, *f.Inicio)
		conds = append(conds, col+" >= $"+strconv.Itoa(len(args)))
	}
	if f.Fim != nil {
		args = append(args, *f.Fim)
		conds = append(conds, col+" <= $"+strconv.Itoa(len(args)))
	}
	return conds, args
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func andClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(conds, " AND ")
}
