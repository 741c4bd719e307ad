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

// uploadHandler handles spreadsheet uploads.
type uploadHandler struct {
	importacaoService portssvc.ImportacaoSvcFacade
}

func newUploadHandler(is portssvc.ImportacaoSvcFacade) *uploadHandler {
	return &uploadHandler{importacaoService: is}
}

func registerUploadRoutes(rg *gin.RouterGroup, importacaoService portssvc.ImportacaoSvcFacade) {
	h := newUploadHandler(importacaoService)
	rg.POST("/upload/", h.upload)
}

func (h *uploadHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Upload without file field", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhum arquivo enviado"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao processar o arquivo"})
		return
	}
	defer file.Close()

	res, err := h.importacaoService.ImportarArquivo(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Upload rejected", slog.String("arquivo", fileHeader.Filename), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Import failed", slog.String("arquivo", fileHeader.Filename), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao importar o arquivo"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewUploadResponse(res.LinhasImportadas))
}
