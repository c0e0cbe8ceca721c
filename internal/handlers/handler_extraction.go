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

// extractionHandler handles HTTP requests for total extraction.
type extractionHandler struct {
	extractionService portssvc.ExtractionSvcFacade
}

func newExtractionHandler(es portssvc.ExtractionSvcFacade) *extractionHandler {
	return &extractionHandler{extractionService: es}
}

// registerExtractionRoutes registers routes related to extraction.
func registerExtractionRoutes(rg *gin.RouterGroup, extractionService portssvc.ExtractionSvcFacade) {
	h := newExtractionHandler(extractionService)

	extractions := rg.Group("/extractions")
	{
		extractions.POST("/total", h.extractTotal)
	}
}

// extractTotal godoc
// @Summary Extract a document total from OCR text
// @Description Scans OCR text for a "total" label in the requested languages and returns the adjacent monetary amount. NOT_FOUND and AMBIGUOUS outcomes are reported in the response status.
// @Tags extractions
// @Accept json
// @Produce json
// @Param extraction body dto.ExtractTotalRequest true "OCR text and options"
// @Success 200 {object} dto.ExtractTotalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Extraction failed"
// @Security BearerAuth
// @Router /extractions/total [post]
func (h *extractionHandler) extractTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExtractTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for extractTotal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.extractionService.ExtractTotal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrUnknownCurrency) {
			logger.Warn("Rejected extraction request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Extraction failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to extract total"})
		return
	}

	logger.Info("Extraction completed",
		slog.String("status", string(result.Status)),
		slog.Int("candidates", len(result.Candidates)),
	)
	c.JSON(http.StatusOK, dto.ToExtractTotalResponse(result))
}
