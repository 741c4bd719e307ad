package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/internal/core/services"
	"github.com/custos-app/custos-backend/internal/dto"
	"github.com/custos-app/custos-backend/internal/middleware"
	"github.com/custos-app/custos-backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler issues JWT access tokens.
type authHandler struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

func newAuthHandler(cfg *config.Config, us portssvc.UserSvcFacade) *authHandler {
	return &authHandler{cfg: cfg, userService: us}
}

// registerAuthRoutes registers the public token endpoint, rate limited by IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services.User)

	loginLimiter := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 10})
	r.POST("/api/token/", middleware.RateLimit(loginLimiter), h.token)
}

func (h *authHandler) token(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for token request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			logger.Warn("Login failed", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário ou senha inválidos"})
			return
		}
		logger.Error("Authentication error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno de autenticação"})
		return
	}

	token, err := h.generateToken(user.UserID)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno de autenticação"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Access: token})
}

func (h *authHandler) generateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    h.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.JWTExpiryDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
