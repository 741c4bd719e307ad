package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/custos-app/custos-backend/internal/apperrors"
	"github.com/custos-app/custos-backend/internal/core/domain"
	portsrepo "github.com/custos-app/custos-backend/internal/core/ports/repositories"
	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/internal/dto"
)

// mesesAbreviados are the Portuguese month labels used in time series.
var mesesAbreviados = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

type ResumoService struct {
	resumoRepo           portsrepo.ResumoRepository
	responsavelRepo      portsrepo.ResponsavelRepository
	fornecedorConfigRepo portsrepo.FornecedorConfigRepository
}

func NewResumoService(
	resumoRepo portsrepo.ResumoRepository,
	responsavelRepo portsrepo.ResponsavelRepository,
	fornecedorConfigRepo portsrepo.FornecedorConfigRepository,
) *ResumoService {
	return &ResumoService{
		resumoRepo:           resumoRepo,
		responsavelRepo:      responsavelRepo,
		fornecedorConfigRepo: fornecedorConfigRepo,
	}
}

var _ portssvc.ResumoSvcFacade = (*ResumoService)(nil)

// overlaySetores maps raw responsavel names to display names. Loaded fresh on
// every request so renames show up without a restart.
func (s *ResumoService) overlaySetores(ctx context.Context) (map[string]string, error) {
	rs, err := s.responsavelRepo.ListResponsaveis(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load responsavel overlay: %w", err)
	}
	m := make(map[string]string, len(rs))
	for _, r := range rs {
		m[r.Nome] = r.NomeParaExibicao()
	}
	return m, nil
}

func (s *ResumoService) overlayFornecedores(ctx context.Context) (map[string]domain.FornecedorConfig, error) {
	fs, err := s.fornecedorConfigRepo.ListFornecedorConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fornecedor overlay: %w", err)
	}
	m := make(map[string]domain.FornecedorConfig, len(fs))
	for _, f := range fs {
		m[f.NomeOriginal] = f
	}
	return m, nil
}

func nomeSetor(overlay map[string]string, raw string) string {
	if nome, ok := overlay[raw]; ok {
		return nome
	}
	return raw
}

func nomeFornecedor(overlay map[string]domain.FornecedorConfig, raw string) string {
	if cfg, ok := overlay[raw]; ok {
		return cfg.NomeParaExibicao()
	}
	return raw
}

func fornecedorOculto(overlay map[string]domain.FornecedorConfig, raw string) bool {
	cfg, ok := overlay[raw]
	return ok && !cfg.Exibir
}

// somaSetor adds total to the entry for setor, creating it when absent.
func somaSetor(lista []dto.TotalSetorDTO, setor string, total float64) []dto.TotalSetorDTO {
	for i := range lista {
		if lista[i].Setor == setor {
			lista[i].Total += total
			return lista
		}
	}
	return append(lista, dto.TotalSetorDTO{Setor: setor, Total: total})
}

func (s *ResumoService) ResumoMensal(ctx context.Context, ano int) (*dto.ResumoMensalResponse, error) {
	overlay, err := s.overlaySetores(ctx)
	if err != nil {
		return nil, err
	}

	porMes, err := s.resumoRepo.TotaisPorMes(ctx, ano)
	if err != nil {
		return nil, err
	}
	porSetorMes, err := s.resumoRepo.TotaisPorSetorMes(ctx, ano)
	if err != nil {
		return nil, err
	}
	meses, err := s.resumoRepo.MesesComDados(ctx, ano)
	if err != nil {
		return nil, err
	}
	total, err := s.resumoRepo.TotalPeriodo(ctx, domain.FiltroAno(ano))
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumoMensalResponse{
		PorMes:      make([]dto.TotalMesDTO, 0, len(porMes)),
		PorSetorMes: make([]dto.TotalSetorMesDTO, 0, len(porSetorMes)),
		Totais: dto.TotaisAnoDTO{
			Ano:           ano,
			TotalAno:      total.InexactFloat64(),
			MesesComDados: meses,
		},
	}
	for _, m := range porMes {
		resp.PorMes = append(resp.PorMes, dto.TotalMesDTO{Mes: m.Mes, Total: m.Total.InexactFloat64()})
	}
	for _, sm := range porSetorMes {
		resp.PorSetorMes = append(resp.PorSetorMes, dto.TotalSetorMesDTO{
			Mes:   sm.Mes,
			Setor: nomeSetor(overlay, sm.Setor),
			Total: sm.Total.InexactFloat64(),
		})
	}
	return resp, nil
}

func (s *ResumoService) ResumoDiario(ctx context.Context, ano, mes int) (*dto.ResumoDiarioResponse, error) {
	overlay, err := s.overlaySetores(ctx)
	if err != nil {
		return nil, err
	}

	filtro := domain.FiltroMes(ano, mes)
	porDia, err := s.resumoRepo.TotaisPorDia(ctx, ano, mes)
	if err != nil {
		return nil, err
	}
	porSetor, err := s.resumoRepo.TotaisPorSetor(ctx, filtro, 10)
	if err != nil {
		return nil, err
	}
	dias, err := s.resumoRepo.DiasComDados(ctx, ano, mes)
	if err != nil {
		return nil, err
	}
	total, err := s.resumoRepo.TotalPeriodo(ctx, filtro)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumoDiarioResponse{
		PorDia:   make([]dto.TotalDiaDTO, 0, len(porDia)),
		PorSetor: make([]dto.TotalSetorDTO, 0, len(porSetor)),
		Totais: dto.TotaisMesDTO{
			Mes:          mes,
			Ano:          ano,
			TotalMes:     total.InexactFloat64(),
			DiasComDados: dias,
		},
	}
	for _, d := range porDia {
		resp.PorDia = append(resp.PorDia, dto.TotalDiaDTO{Dia: d.Dia, Total: d.Total.InexactFloat64()})
	}
	for _, st := range porSetor {
		resp.PorSetor = append(resp.PorSetor, dto.TotalSetorDTO{
			Setor: nomeSetor(overlay, st.Setor),
			Total: st.Total.InexactFloat64(),
		})
	}
	return resp, nil
}

func (s *ResumoService) DetalhesSetor(ctx context.Context, ano int, setor string, mes *int) ([]dto.DetalheSetorDTO, error) {
	filtro := domain.FiltroAno(ano)
	if mes != nil {
		filtro = domain.FiltroMes(ano, *mes)
	}

	detalhes, err := s.resumoRepo.DetalhesSetor(ctx, setor, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DetalheSetorDTO, 0, len(detalhes))
	for _, d := range detalhes {
		out = append(out, dto.DetalheSetorDTO{
			Descricao: d.Descricao,
			Total:     d.Total.InexactFloat64(),
			Count:     d.Count,
		})
	}
	return out, nil
}

func (s *ResumoService) ResumoFornecedores(ctx context.Context, ano int, mes *int) (*dto.ResumoFornecedoresResponse, error) {
	overlaySetor, err := s.overlaySetores(ctx)
	if err != nil {
		return nil, err
	}
	overlayForn, err := s.overlayFornecedores(ctx)
	if err != nil {
		return nil, err
	}

	filtro := domain.FiltroAno(ano)
	if mes != nil {
		filtro = domain.FiltroMes(ano, *mes)
	}

	brutos, err := s.resumoRepo.TotaisPorFornecedor(ctx, filtro, 50)
	if err != nil {
		return nil, err
	}
	visiveis := make([]domain.TotalFornecedor, 0, len(brutos))
	for _, f := range brutos {
		if fornecedorOculto(overlayForn, f.Fornecedor) {
			continue
		}
		visiveis = append(visiveis, f)
	}

	resp := &dto.ResumoFornecedoresResponse{
		PorFornecedor:  make([]dto.FornecedorTotalDTO, 0, len(visiveis)),
		PorSetor:       map[string][]dto.TotalSetorDTO{},
		EvolucaoMensal: map[string]map[int]float64{},
		Ano:            ano,
		Mes:            mes,
	}
	for _, f := range visiveis {
		resp.PorFornecedor = append(resp.PorFornecedor, dto.FornecedorTotalDTO{
			Fornecedor:         nomeFornecedor(overlayForn, f.Fornecedor),
			FornecedorOriginal: f.Fornecedor,
			Total:              f.Total.InexactFloat64(),
			Transacoes:         f.Transacoes,
		})
	}

	top10 := visiveis
	if len(top10) > 10 {
		top10 = top10[:10]
	}
	for _, f := range top10 {
		setores, err := s.resumoRepo.SetoresPorFornecedor(ctx, f.Fornecedor, filtro, 5)
		if err != nil {
			return nil, err
		}
		// Raw suppliers sharing one display name collapse into one key, so
		// their breakdowns merge instead of overwriting each other.
		chave := nomeFornecedor(overlayForn, f.Fornecedor)
		lista := resp.PorSetor[chave]
		if lista == nil {
			lista = []dto.TotalSetorDTO{}
		}
		for _, st := range setores {
			lista = somaSetor(lista, nomeSetor(overlaySetor, st.Setor), st.Total.InexactFloat64())
		}
		sort.SliceStable(lista, func(i, j int) bool {
			if lista[i].Total != lista[j].Total {
				return lista[i].Total > lista[j].Total
			}
			return lista[i].Setor < lista[j].Setor
		})
		if len(lista) > 5 {
			lista = lista[:5]
		}
		resp.PorSetor[chave] = lista
	}

	top5 := visiveis
	if len(top5) > 5 {
		top5 = top5[:5]
	}
	for _, f := range top5 {
		meses, err := s.resumoRepo.EvolucaoMensalFornecedor(ctx, f.Fornecedor, domain.FiltroAno(ano))
		if err != nil {
			return nil, err
		}
		chave := nomeFornecedor(overlayForn, f.Fornecedor)
		serie := resp.EvolucaoMensal[chave]
		if serie == nil {
			serie = make(map[int]float64, len(meses))
		}
		for _, m := range meses {
			serie[m.Mes] += m.Total.InexactFloat64()
		}
		resp.EvolucaoMensal[chave] = serie
	}

	total, err := s.resumoRepo.TotalFornecedoresPeriodo(ctx, filtro)
	if err != nil {
		return nil, err
	}
	resp.TotalAno = total.InexactFloat64()
	return resp, nil
}

func (s *ResumoService) DetalhesFornecedor(ctx context.Context, ano int, fornecedor string, mes *int) ([]dto.DetalheFornecedorDTO, error) {
	overlay, err := s.overlaySetores(ctx)
	if err != nil {
		return nil, err
	}

	filtro := domain.FiltroAno(ano)
	if mes != nil {
		filtro = domain.FiltroMes(ano, *mes)
	}
	setores, err := s.resumoRepo.SetoresPorFornecedor(ctx, fornecedor, filtro, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DetalheFornecedorDTO, 0, len(setores))
	for _, st := range setores {
		out = append(out, dto.DetalheFornecedorDTO{
			Setor: nomeSetor(overlay, st.Setor),
			Total: st.Total.InexactFloat64(),
			Count: st.Count,
		})
	}
	return out, nil
}

func (s *ResumoService) TransacoesFornecedor(ctx context.Context, ano int, fornecedor string, mes *int) ([]dto.TransacaoFornecedorDTO, error) {
	overlay, err := s.overlaySetores(ctx)
	if err != nil {
		return nil, err
	}

	filtro := domain.FiltroAno(ano)
	if mes != nil {
		filtro = domain.FiltroMes(ano, *mes)
	}
	ts, err := s.resumoRepo.TransacoesFornecedor(ctx, fornecedor, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransacaoFornecedorDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, dto.TransacaoFornecedorDTO{
			Data:           t.Data.Format("2006-01-02"),
			Valor:          t.Valor.InexactFloat64(),
			DescricaoConta: t.DescricaoConta,
			TxtDetalhe:     t.TxtDetalhe,
			Setor:          nomeSetor(overlay, t.ResponsavelNome),
		})
	}
	return out, nil
}

func (s *ResumoService) ResumoGeral(ctx context.Context, periodo string, ano, mes int, semana *int) (*dto.ResumoGeralResponse, error) {
	overlaySetor, err := s.overlaySetores(ctx)
	if err != nil {
		return nil, err
	}
	overlayForn, err := s.overlayFornecedores(ctx)
	if err != nil {
		return nil, err
	}

	var filtro domain.PeriodoFiltro
	switch periodo {
	case "tudo":
	case "ano":
		filtro = domain.FiltroAno(ano)
	case "mes":
		filtro = domain.FiltroMes(ano, mes)
	case "semana":
		if semana == nil {
			return nil, apperrors.NewValidationError("Parâmetro 'semana' é obrigatório para periodo=semana")
		}
		inicio, fim := intervaloSemanaISO(ano, *semana)
		filtro = domain.FiltroIntervalo(inicio, fim)
	default:
		return nil, apperrors.NewValidationError("Parâmetro 'periodo' deve ser tudo, ano, mes ou semana")
	}

	setores, err := s.resumoRepo.TotaisPorSetor(ctx, filtro, 15)
	if err != nil {
		return nil, err
	}
	fornecedores, err := s.resumoRepo.TotaisPorFornecedor(ctx, filtro, 0)
	if err != nil {
		return nil, err
	}
	total, err := s.resumoRepo.TotalPeriodo(ctx, filtro)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumoGeralResponse{
		TopSetores:      make([]dto.NomeTotalDTO, 0, len(setores)),
		TopFornecedores: []dto.NomeTotalDTO{},
		TotalGeral:      total.InexactFloat64(),
		Periodo:         periodo,
		Ano:             ano,
		Mes:             mes,
	}
	for _, st := range setores {
		resp.TopSetores = append(resp.TopSetores, dto.NomeTotalDTO{
			Nome:  nomeSetor(overlaySetor, st.Setor),
			Total: st.Total.InexactFloat64(),
		})
	}
	for _, f := range fornecedores {
		if fornecedorOculto(overlayForn, f.Fornecedor) {
			continue
		}
		resp.TopFornecedores = append(resp.TopFornecedores, dto.NomeTotalDTO{
			Nome:  nomeFornecedor(overlayForn, f.Fornecedor),
			Total: f.Total.InexactFloat64(),
		})
		if len(resp.TopFornecedores) == 15 {
			break
		}
	}
	return resp, nil
}

func (s *ResumoService) DashboardResumo(ctx context.Context, inicio, fim *time.Time) (*dto.DashboardResumoResponse, error) {
	overlay, err := s.overlaySetores(ctx)
	if err != nil {
		return nil, err
	}

	filtro := domain.PeriodoFiltro{Inicio: inicio, Fim: fim}
	total, err := s.resumoRepo.TotalPeriodo(ctx, filtro)
	if err != nil {
		return nil, err
	}
	setores, err := s.resumoRepo.TotaisPorSetor(ctx, filtro, 0)
	if err != nil {
		return nil, err
	}
	tempo, err := s.resumoRepo.TotaisPorTempo(ctx, filtro)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResumoResponse{
		TotalGasto:  total.InexactFloat64(),
		ResumoSetor: make([]dto.SetorResumoDTO, 0, len(setores)),
		ResumoTempo: make([]dto.TempoTotalDTO, 0, len(tempo)),
	}
	for _, st := range setores {
		resp.ResumoSetor = append(resp.ResumoSetor, dto.SetorResumoDTO{
			ResponsavelNome: nomeSetor(overlay, st.Setor),
			Total:           st.Total.InexactFloat64(),
		})
	}
	for _, t := range tempo {
		resp.ResumoTempo = append(resp.ResumoTempo, dto.TempoTotalDTO{
			Nome:  fmt.Sprintf("%s/%d", mesesAbreviados[t.Mes-1], t.Ano),
			Total: t.Total.InexactFloat64(),
		})
	}
	return resp, nil
}

func (s *ResumoService) FornecedoresUnicos(ctx context.Context) ([]string, error) {
	return s.resumoRepo.FornecedoresUnicos(ctx)
}

// intervaloSemanaISO returns the Monday and Sunday of an ISO week.
func intervaloSemanaISO(ano, semana int) (time.Time, time.Time) {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(ano, time.January, 4, 0, 0, 0, 0, time.UTC)
	diasDesdeSegunda := (int(jan4.Weekday()) + 6) % 7
	segundaSemana1 := jan4.AddDate(0, 0, -diasDesdeSegunda)
	inicio := segundaSemana1.AddDate(0, 0, (semana-1)*7)
	fim := inicio.AddDate(0, 0, 6)
	return inicio, fim
}
