package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/dto"
	"github.com/SscSPs/statement_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests that add or remove ledger entries.
type entryHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newEntryHandler(ls portssvc.LedgerSvcFacade) *entryHandler {
	return &entryHandler{ledgerService: ls}
}

// RegisterEntryRoutes registers routes related to ledger entries and the schedule preview.
func RegisterEntryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newEntryHandler(ledgerService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createCashEntry)
		entries.POST("/card-purchases", h.createCardPurchase)
		entries.DELETE("/:entryID", h.deleteEntry)
	}

	rg.POST("/schedule/preview", h.previewSchedule)
}

// createCashEntry godoc
// @Summary Record a cash entry
// @Description Records an Income, Fixed or Debit entry paid on its own date. Investment buys are Debit, sales and yields are Income.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateCashEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createCashEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.CreateCashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCashEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.RecordCashEntry(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record entry")
		return
	}

	logger.Info("Cash entry recorded", slog.String("entry_id", entry.EntryID), slog.String("kind", string(entry.Kind)))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// createCardPurchase godoc
// @Summary Record a card purchase
// @Description Expands the purchase into one entry per installment using the card's current closing day
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreateCardPurchaseRequest true "Purchase details"
// @Success 201 {object} dto.CardPurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Security BearerAuth
// @Router /entries/card-purchases [post]
func (h *entryHandler) createCardPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.CreateCardPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCardPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	purchase, err := h.ledgerService.RecordCardPurchase(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger.With(slog.String("card_id", req.CardID)), err, "Failed to record purchase")
		return
	}

	logger.Info("Card purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.Int("installments", len(purchase.Entries)))
	c.JSON(http.StatusCreated, dto.ToCardPurchaseResponse(purchase))
}

// deleteEntry godoc
// @Summary Delete a ledger entry
// @Tags entries
// @Param   entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	entryID := c.Param("entryID")

	if err := h.ledgerService.DeleteEntry(c.Request.Context(), ownerID, entryID); err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to delete entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// previewSchedule godoc
// @Summary Preview an installment schedule
// @Description Computes statement, close date and installments for a hypothetical purchase. Nothing is stored.
// @Tags schedule
// @Accept  json
// @Produce  json
// @Param   purchase body dto.SchedulePreviewRequest true "Purchase details"
// @Success 200 {object} dto.SchedulePreviewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /schedule/preview [post]
func (h *entryHandler) previewSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SchedulePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SchedulePreview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	plan, err := h.ledgerService.PreviewSchedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to compute schedule")
		return
	}

	c.JSON(http.StatusOK, dto.ToSchedulePreviewResponse(plan))
}
