package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/expensio/invoice_ocr_api/internal/dto"
	"github.com/expensio/invoice_ocr_api/internal/middleware"
	"github.com/expensio/invoice_ocr_api/internal/platform/config"
	"github.com/expensio/invoice_ocr_api/internal/utils"
)

// AuthHandler issues JWTs to the configured machine client.
type AuthHandler struct {
	clientID         string
	clientSecretHash string
	jwtSecret        string
	jwtDuration      time.Duration
	jwtIssuer        string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		clientID:         cfg.APIClientID,
		clientSecretHash: cfg.APIClientSecretHash,
		jwtSecret:        cfg.JWTSecret,
		jwtDuration:      cfg.JWTExpiryDuration,
		jwtIssuer:        cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/token", middleware.RateLimit(ipLimiter), h.Token)
	}
}

// Token godoc
// @Summary Issue an access token
// @Description Authenticates a machine client by id and secret and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.TokenRequest true "Client Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if h.clientID == "" || h.clientSecretHash == "" {
		logger.Error("Token requested but no API client is configured")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid client credentials"})
		return
	}
	if req.ClientID != h.clientID || !utils.CheckSecretHash(req.ClientSecret, h.clientSecretHash) {
		logger.Warn("Rejected client credentials", slog.String("client_id", req.ClientID))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid client credentials"})
		return
	}

	token, err := utils.GenerateJWT(req.ClientID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.jwtDuration.Seconds()),
	})
}
