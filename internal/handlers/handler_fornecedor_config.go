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

// fornecedorConfigHandler handles HTTP requests for the supplier display
// overlay.
type fornecedorConfigHandler struct {
	configService portssvc.FornecedorConfigSvcFacade
}

func newFornecedorConfigHandler(cs portssvc.FornecedorConfigSvcFacade) *fornecedorConfigHandler {
	return &fornecedorConfigHandler{configService: cs}
}

func registerFornecedorConfigRoutes(rg *gin.RouterGroup, configService portssvc.FornecedorConfigSvcFacade) {
	h := newFornecedorConfigHandler(configService)

	configs := rg.Group("/fornecedor-config")
	{
		configs.GET("/", h.listConfigs)
		configs.POST("/", h.createConfig)
		configs.GET("/:id", h.getConfig)
		configs.PUT("/:id", h.updateConfig)
		configs.DELETE("/:id", h.deleteConfig)
	}
	rg.POST("/fornecedor-config-bulk/", h.bulkUpsert)
}

func (h *fornecedorConfigHandler) createConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFornecedorConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFornecedorConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	f, err := h.configService.CreateFornecedorConfig(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Configuração já existe para este fornecedor"})
			return
		}
		logger.Error("Failed to create fornecedor config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar configuração"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToFornecedorConfigResponse(f))
}

func (h *fornecedorConfigHandler) getConfig(c *gin.Context) {
	f, err := h.configService.GetFornecedorConfigByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Configuração não encontrada"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get fornecedor config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar configuração"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFornecedorConfigResponse(f))
}

func (h *fornecedorConfigHandler) listConfigs(c *gin.Context) {
	fs, err := h.configService.ListFornecedorConfigs(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list fornecedor configs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar configurações"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListFornecedorConfigsResponse(fs))
}

func (h *fornecedorConfigHandler) updateConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFornecedorConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFornecedorConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	f, err := h.configService.UpdateFornecedorConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Configuração não encontrada"})
			return
		}
		logger.Error("Failed to update fornecedor config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar configuração"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFornecedorConfigResponse(f))
}

func (h *fornecedorConfigHandler) deleteConfig(c *gin.Context) {
	err := h.configService.DeleteFornecedorConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Configuração não encontrada"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete fornecedor config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir configuração"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *fornecedorConfigHandler) bulkUpsert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkFornecedorConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulk fornecedor config", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	res, err := h.configService.BulkUpsertFornecedorConfigs(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to bulk upsert fornecedor configs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar configurações"})
		return
	}
	c.JSON(http.StatusOK, res)
}
