package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/dto"
	"github.com/SscSPs/statement_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// usdRateHandler handles HTTP requests for daily USD quotes.
type usdRateHandler struct {
	usdRateService portssvc.USDRateSvcFacade
}

func newUSDRateHandler(s portssvc.USDRateSvcFacade) *usdRateHandler {
	return &usdRateHandler{usdRateService: s}
}

// RegisterUSDRateRoutes registers routes related to USD quotes.
func RegisterUSDRateRoutes(rg *gin.RouterGroup, usdRateService portssvc.USDRateSvcFacade) {
	h := newUSDRateHandler(usdRateService)

	rates := rg.Group("/usd-rates")
	{
		rates.PUT("/:date", h.upsertRate)
		rates.GET("/:date", h.getRate)
	}
}

// upsertRate godoc
// @Summary Store the USD quote of a day
// @Description Creates or replaces the official and blue quotes of one day
// @Tags usd-rates
// @Accept  json
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Param   rate body dto.UpsertUSDRateRequest true "Quotes"
// @Success 200 {object} dto.USDRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to store quote"
// @Security BearerAuth
// @Router /usd-rates/{date} [put]
func (h *usdRateHandler) upsertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date, err := dto.ParseDate("date", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpsertUSDRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertUSDRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.usdRateService.UpsertUSDRate(c.Request.Context(), date, req)
	if err != nil {
		respondError(c, logger, err, "Failed to store quote")
		return
	}

	c.JSON(http.StatusOK, dto.ToUSDRateResponse(rate))
}

// getRate godoc
// @Summary Get the USD quote of a day
// @Tags usd-rates
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.USDRateResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 500 {object} map[string]string "Failed to retrieve quote"
// @Security BearerAuth
// @Router /usd-rates/{date} [get]
func (h *usdRateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date, err := dto.ParseDate("date", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := h.usdRateService.GetUSDRate(c.Request.Context(), date)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve quote")
		return
	}

	c.JSON(http.StatusOK, dto.ToUSDRateResponse(rate))
}
