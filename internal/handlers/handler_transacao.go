package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/custos-app/custos-backend/internal/apperrors"
	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/internal/dto"
	"github.com/custos-app/custos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transacaoHandler lists ingested fact rows.
type transacaoHandler struct {
	transacaoService portssvc.TransacaoSvcFacade
}

func newTransacaoHandler(ts portssvc.TransacaoSvcFacade) *transacaoHandler {
	return &transacaoHandler{transacaoService: ts}
}

func registerTransacaoRoutes(rg *gin.RouterGroup, transacaoService portssvc.TransacaoSvcFacade) {
	h := newTransacaoHandler(transacaoService)
	rg.GET("/transacoes/", h.listTransacoes)
}

func (h *transacaoHandler) listTransacoes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransacoesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ts, err := h.transacaoService.ListTransacoes(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar transações"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransacoesResponse(ts))
}
