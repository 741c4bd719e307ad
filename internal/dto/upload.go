package dto

import "fmt"

// UploadResponse is the success payload of POST /api/upload/.
type UploadResponse struct {
	Message          string `json:"message"`
	LinhasImportadas int    `json:"linhas_importadas"`
}

// NewUploadResponse builds the success message for an import.
func NewUploadResponse(linhas int) UploadResponse {
	return UploadResponse{
		Message:          fmt.Sprintf("Sucesso! %d linhas importadas.", linhas),
		LinhasImportadas: linhas,
	}
}
