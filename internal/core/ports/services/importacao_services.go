package services

import (
	"context"
	"io"

	"github.com/custos-app/custos-backend/internal/core/domain"
)

// ImportacaoSvcFacade runs the spreadsheet ingestion pipeline.
type ImportacaoSvcFacade interface {
	// ImportarArquivo parses an uploaded file, validates its columns, cleans
	// the rows and loads them atomically. Validation problems return
	// apperrors.ErrValidation-wrapped errors.
	ImportarArquivo(ctx context.Context, nomeArquivo string, r io.Reader) (domain.ResultadoImportacao, error)
}
