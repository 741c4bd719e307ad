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

// responsavelHandler handles HTTP requests for the cost-center dimension.
type responsavelHandler struct {
	responsavelService portssvc.ResponsavelSvcFacade
}

func newResponsavelHandler(rs portssvc.ResponsavelSvcFacade) *responsavelHandler {
	return &responsavelHandler{responsavelService: rs}
}

func registerResponsavelRoutes(rg *gin.RouterGroup, responsavelService portssvc.ResponsavelSvcFacade) {
	h := newResponsavelHandler(responsavelService)

	responsaveis := rg.Group("/responsaveis")
	{
		responsaveis.GET("/", h.listResponsaveis)
		responsaveis.POST("/", h.createResponsavel)
		responsaveis.GET("/:id", h.getResponsavel)
		responsaveis.PUT("/:id", h.updateResponsavel)
		responsaveis.DELETE("/:id", h.deleteResponsavel)
	}
}

func (h *responsavelHandler) createResponsavel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateResponsavelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateResponsavel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	r, err := h.responsavelService.CreateResponsavel(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Responsável já existe"})
			return
		}
		logger.Error("Failed to create responsavel", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar responsável"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToResponsavelResponse(r))
}

func (h *responsavelHandler) getResponsavel(c *gin.Context) {
	r, err := h.responsavelService.GetResponsavelByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Responsável não encontrado"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get responsavel", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar responsável"})
		return
	}
	c.JSON(http.StatusOK, dto.ToResponsavelResponse(r))
}

func (h *responsavelHandler) listResponsaveis(c *gin.Context) {
	rs, err := h.responsavelService.ListResponsaveis(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list responsaveis", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar responsáveis"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponsaveisResponse(rs))
}

func (h *responsavelHandler) updateResponsavel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateResponsavelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateResponsavel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	r, err := h.responsavelService.UpdateResponsavel(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Responsável não encontrado"})
			return
		}
		logger.Error("Failed to update responsavel", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar responsável"})
		return
	}
	c.JSON(http.StatusOK, dto.ToResponsavelResponse(r))
}

func (h *responsavelHandler) deleteResponsavel(c *gin.Context) {
	err := h.responsavelService.DeleteResponsavel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Responsável não encontrado"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete responsavel", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir responsável"})
		return
	}
	c.Status(http.StatusNoContent)
}
