package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/custos-app/custos-backend/internal/apperrors"
	"github.com/custos-app/custos-backend/internal/core/domain"
	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/internal/dto"
	"github.com/custos-app/custos-backend/internal/handlers"
	"github.com/custos-app/custos-backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ImportacaoService ---
type MockImportacaoService struct {
	mock.Mock
}

var _ portssvc.ImportacaoSvcFacade = (*MockImportacaoService)(nil)

func (m *MockImportacaoService) ImportarArquivo(ctx context.Context, nomeArquivo string, r io.Reader) (domain.ResultadoImportacao, error) {
	args := m.Called(ctx, nomeArquivo, r)
	return args.Get(0).(domain.ResultadoImportacao), args.Error(1)
}

// --- Test Suite ---
type UploadHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockImportacaoService *MockImportacaoService
	jwtSecret             string
}

func (suite *UploadHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "custos-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *UploadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockImportacaoService = new(MockImportacaoService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, JWTIssuer: "custos-test", JWTExpiryDuration: time.Hour}
	container := &portssvc.ServiceContainer{Importacao: suite.mockImportacaoService}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *UploadHandlerTestSuite) multipartBody(field, filename, content string) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	suite.Require().NoError(err)
	_, err = part.Write([]byte(content))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())
	return body, writer.FormDataContentType()
}

func (suite *UploadHandlerTestSuite) TestUploadSemToken() {
	body, contentType := suite.multipartBody("file", "custos.csv", "MA\n")
	req := httptest.NewRequest(http.MethodPost, "/api/upload/", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *UploadHandlerTestSuite) TestUploadSemArquivo() {
	req := httptest.NewRequest(http.MethodPost, "/api/upload/", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("u1"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockImportacaoService.AssertNotCalled(suite.T(), "ImportarArquivo")
}

func (suite *UploadHandlerTestSuite) TestUploadValidacaoFalha() {
	suite.mockImportacaoService.On("ImportarArquivo", mock.Anything, "custos.csv", mock.Anything).
		Return(domain.ResultadoImportacao{}, apperrors.NewValidationError("Colunas faltando: TRANSDATE"))

	body, contentType := suite.multipartBody("file", "custos.csv", "MA\nSetor\n")
	req := httptest.NewRequest(http.MethodPost, "/api/upload/", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("u1"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "Colunas faltando")
}

func (suite *UploadHandlerTestSuite) TestUploadSucesso() {
	suite.mockImportacaoService.On("ImportarArquivo", mock.Anything, "custos.csv", mock.Anything).
		Return(domain.ResultadoImportacao{LinhasImportadas: 42}, nil)

	body, contentType := suite.multipartBody("file", "custos.csv", "MA,TRANSDATE\n")
	req := httptest.NewRequest(http.MethodPost, "/api/upload/", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("u1"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UploadResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Sucesso! 42 linhas importadas.", resp.Message)
	suite.Equal(42, resp.LinhasImportadas)
}

func (suite *UploadHandlerTestSuite) TestUploadErroInterno() {
	suite.mockImportacaoService.On("ImportarArquivo", mock.Anything, "custos.csv", mock.Anything).
		Return(domain.ResultadoImportacao{}, errors.New("db down"))

	body, contentType := suite.multipartBody("file", "custos.csv", "MA,TRANSDATE\n")
	req := httptest.NewRequest(http.MethodPost, "/api/upload/", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("u1"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func TestUploadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}
