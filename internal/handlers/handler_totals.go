package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expensio/invoice_ocr_api/internal/apperrors"
	portssvc "github.com/expensio/invoice_ocr_api/internal/core/ports/services"
	"github.com/expensio/invoice_ocr_api/internal/dto"
	"github.com/expensio/invoice_ocr_api/internal/middleware"
)

// totalsHandler handles HTTP requests for total verification.
type totalsHandler struct {
	totalsService portssvc.TotalsSvcFacade
}

func newTotalsHandler(ts portssvc.TotalsSvcFacade) *totalsHandler {
	return &totalsHandler{totalsService: ts}
}

// registerTotalsRoutes registers routes related to total verification.
func registerTotalsRoutes(rg *gin.RouterGroup, totalsService portssvc.TotalsSvcFacade) {
	h := newTotalsHandler(totalsService)

	totals := rg.Group("/totals")
	{
		totals.POST("/verify", h.verifyTotal)
	}
}

// verifyTotal godoc
// @Summary Verify a reported total against line amounts
// @Description Sums the verified line amounts and compares them to the reported total within one minor unit of the currency.
// @Tags totals
// @Accept json
// @Produce json
// @Param verification body dto.VerifyTotalRequest true "Line amounts and reported total"
// @Success 200 {object} dto.VerifyTotalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Verification failed"
// @Security BearerAuth
// @Router /totals/verify [post]
func (h *totalsHandler) verifyTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VerifyTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for verifyTotal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.totalsService.VerifyTotal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrUnknownCurrency) {
			logger.Warn("Rejected verification request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Verification failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to verify total"})
		return
	}

	logger.Info("Verification completed", slog.Bool("matched", result.Matched))
	c.JSON(http.StatusOK, result)
}
