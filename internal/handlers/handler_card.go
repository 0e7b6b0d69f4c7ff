package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/dto"
	"github.com/SscSPs/statement_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cardHandler handles HTTP requests related to credit cards.
type cardHandler struct {
	cardService portssvc.CardSvcFacade
}

// newCardHandler creates a new cardHandler.
func newCardHandler(cs portssvc.CardSvcFacade) *cardHandler {
	return &cardHandler{
		cardService: cs,
	}
}

// RegisterCardRoutes registers routes related to cards.
func RegisterCardRoutes(rg *gin.RouterGroup, cardService portssvc.CardSvcFacade) {
	h := newCardHandler(cardService)

	cards := rg.Group("/cards")
	{
		cards.POST("", h.createCard)
		cards.GET("", h.listCards)
		cards.POST("/defaults", h.ensureDefaultCards)
		cards.PATCH("/:cardID", h.updateClosingDay)
		cards.DELETE("/:cardID", h.deleteCard)
	}
}

// createCard godoc
// @Summary Create a credit card
// @Description Registers a card with its statement closing day (1-31)
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   card body dto.CreateCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Card name already exists"
// @Failure 500 {object} map[string]string "Failed to create card"
// @Security BearerAuth
// @Router /cards [post]
func (h *cardHandler) createCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create card")
		return
	}

	logger.Info("Card created successfully", slog.String("card_id", card.CardID))
	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// listCards godoc
// @Summary List credit cards
// @Description Lists the authenticated owner's cards ordered by name
// @Tags cards
// @Produce  json
// @Success 200 {object} dto.ListCardsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list cards"
// @Security BearerAuth
// @Router /cards [get]
func (h *cardHandler) listCards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	cards, err := h.cardService.ListCards(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list cards")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCardsResponse(cards))
}

// ensureDefaultCards godoc
// @Summary Create starter cards
// @Description Creates the starter cards when the owner has none. Returns the owner's cards either way.
// @Tags cards
// @Produce  json
// @Success 200 {object} dto.ListCardsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create starter cards"
// @Security BearerAuth
// @Router /cards/defaults [post]
func (h *cardHandler) ensureDefaultCards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	cards, err := h.cardService.EnsureDefaultCards(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to create starter cards")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCardsResponse(cards))
}

// updateClosingDay godoc
// @Summary Change a card's closing day
// @Description Only purchases recorded after the change use the new day. Existing entries keep their payment dates.
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   cardID path string true "Card ID"
// @Param   body body dto.UpdateClosingDayRequest true "New closing day"
// @Success 200 {object} dto.CardResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to update card"
// @Security BearerAuth
// @Router /cards/{cardID} [patch]
func (h *cardHandler) updateClosingDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	cardID := c.Param("cardID")
	logger = logger.With(slog.String("card_id", cardID))

	var req dto.UpdateClosingDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateClosingDay", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	card, err := h.cardService.UpdateClosingDay(c.Request.Context(), ownerID, cardID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update card")
		return
	}

	logger.Info("Card closing day updated", slog.Int("closing_day", card.ClosingDay))
	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// deleteCard godoc
// @Summary Delete a credit card
// @Description Deletes a card that no ledger entry references
// @Tags cards
// @Param   cardID path string true "Card ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 409 {object} map[string]string "Card still has ledger entries"
// @Failure 500 {object} map[string]string "Failed to delete card"
// @Security BearerAuth
// @Router /cards/{cardID} [delete]
func (h *cardHandler) deleteCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	cardID := c.Param("cardID")

	if err := h.cardService.DeleteCard(c.Request.Context(), ownerID, cardID); err != nil {
		respondError(c, logger.With(slog.String("card_id", cardID)), err, "Failed to delete card")
		return
	}

	c.Status(http.StatusNoContent)
}
