package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/custos-app/custos-backend/internal/apperrors"
	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/internal/dto"
	"github.com/custos-app/custos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// resumoHandler serves the aggregated reporting endpoints.
type resumoHandler struct {
	resumoService portssvc.ResumoSvcFacade
}

func newResumoHandler(rs portssvc.ResumoSvcFacade) *resumoHandler {
	return &resumoHandler{resumoService: rs}
}

func registerResumoRoutes(rg *gin.RouterGroup, resumoService portssvc.ResumoSvcFacade) {
	h := newResumoHandler(resumoService)

	rg.GET("/resumo-mensal/", h.resumoMensal)
	rg.GET("/resumo-diario/", h.resumoDiario)
	rg.GET("/detalhes-setor/", h.detalhesSetor)
	rg.GET("/resumo-fornecedores/", h.resumoFornecedores)
	rg.GET("/resumo-fornecedores-mensal/", h.resumoFornecedoresMensal)
	rg.GET("/detalhes-fornecedor/", h.detalhesFornecedor)
	rg.GET("/transacoes-fornecedor/", h.transacoesFornecedor)
	rg.GET("/resumo-geral/", h.resumoGeral)
	rg.GET("/dashboard-resumo/", h.dashboardResumo)
	rg.GET("/fornecedores-unicos/", h.fornecedoresUnicos)
}

// anoParam parses the ano query parameter, defaulting to the current year.
func anoParam(c *gin.Context) (int, bool) {
	s := c.Query("ano")
	if s == "" {
		return time.Now().Year(), true
	}
	ano, err := strconv.Atoi(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'ano' inválido"})
		return 0, false
	}
	return ano, true
}

// mesParamOpcional parses an optional mes query parameter.
func mesParamOpcional(c *gin.Context) (*int, bool) {
	s := c.Query("mes")
	if s == "" {
		return nil, true
	}
	mes, err := strconv.Atoi(s)
	if err != nil || mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'mes' inválido"})
		return nil, false
	}
	return &mes, true
}

func (h *resumoHandler) respond(c *gin.Context, payload any, err error) {
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Summary query failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao consultar resumo"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *resumoHandler) resumoMensal(c *gin.Context) {
	ano, ok := anoParam(c)
	if !ok {
		return
	}
	resp, err := h.resumoService.ResumoMensal(c.Request.Context(), ano)
	h.respond(c, resp, err)
}

func (h *resumoHandler) resumoDiario(c *gin.Context) {
	ano, err := strconv.Atoi(c.Query("ano"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'ano' é obrigatório"})
		return
	}
	mes, err := strconv.Atoi(c.Query("mes"))
	if err != nil || mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'mes' é obrigatório"})
		return
	}
	resp, errSvc := h.resumoService.ResumoDiario(c.Request.Context(), ano, mes)
	h.respond(c, resp, errSvc)
}

func (h *resumoHandler) detalhesSetor(c *gin.Context) {
	ano, ok := anoParam(c)
	if !ok {
		return
	}
	setor := c.Query("setor")
	if setor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'setor' é obrigatório"})
		return
	}
	mes, ok := mesParamOpcional(c)
	if !ok {
		return
	}
	resp, err := h.resumoService.DetalhesSetor(c.Request.Context(), ano, setor, mes)
	h.respond(c, resp, err)
}

func (h *resumoHandler) resumoFornecedores(c *gin.Context) {
	ano, ok := anoParam(c)
	if !ok {
		return
	}
	resp, err := h.resumoService.ResumoFornecedores(c.Request.Context(), ano, nil)
	h.respond(c, resp, err)
}

func (h *resumoHandler) resumoFornecedoresMensal(c *gin.Context) {
	ano, err := strconv.Atoi(c.Query("ano"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'ano' é obrigatório"})
		return
	}
	mes, err := strconv.Atoi(c.Query("mes"))
	if err != nil || mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'mes' é obrigatório"})
		return
	}
	resp, errSvc := h.resumoService.ResumoFornecedores(c.Request.Context(), ano, &mes)
	h.respond(c, resp, errSvc)
}

func (h *resumoHandler) detalhesFornecedor(c *gin.Context) {
	ano, ok := anoParam(c)
	if !ok {
		return
	}
	fornecedor := c.Query("fornecedor")
	if fornecedor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'fornecedor' é obrigatório"})
		return
	}
	mes, ok := mesParamOpcional(c)
	if !ok {
		return
	}
	resp, err := h.resumoService.DetalhesFornecedor(c.Request.Context(), ano, fornecedor, mes)
	h.respond(c, resp, err)
}

func (h *resumoHandler) transacoesFornecedor(c *gin.Context) {
	ano, ok := anoParam(c)
	if !ok {
		return
	}
	fornecedor := c.Query("fornecedor")
	if fornecedor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'fornecedor' é obrigatório"})
		return
	}
	mes, ok := mesParamOpcional(c)
	if !ok {
		return
	}
	resp, err := h.resumoService.TransacoesFornecedor(c.Request.Context(), ano, fornecedor, mes)
	h.respond(c, resp, err)
}

func (h *resumoHandler) resumoGeral(c *gin.Context) {
	periodo := c.DefaultQuery("periodo", "tudo")
	now := time.Now()

	ano := now.Year()
	if s := c.Query("ano"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'ano' inválido"})
			return
		}
		ano = v
	}
	mes := int(now.Month())
	if s := c.Query("mes"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'mes' inválido"})
			return
		}
		mes = v
	}
	var semana *int
	if s := c.Query("semana"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 53 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'semana' inválido"})
			return
		}
		semana = &v
	}

	resp, err := h.resumoService.ResumoGeral(c.Request.Context(), periodo, ano, mes, semana)
	h.respond(c, resp, err)
}

func (h *resumoHandler) dashboardResumo(c *gin.Context) {
	var inicio, fim *time.Time
	if s := c.Query("inicio"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'inicio' inválido"})
			return
		}
		inicio = &t
	}
	if s := c.Query("fim"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'fim' inválido"})
			return
		}
		fim = &t
	}

	resp, err := h.resumoService.DashboardResumo(c.Request.Context(), inicio, fim)
	h.respond(c, resp, err)
}

func (h *resumoHandler) fornecedoresUnicos(c *gin.Context) {
	nomes, err := h.resumoService.FornecedoresUnicos(c.Request.Context())
	if err != nil {
		h.respond(c, nil, err)
		return
	}
	h.respond(c, dto.FornecedoresUnicosResponse{Fornecedores: nomes}, nil)
}
