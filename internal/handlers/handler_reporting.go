package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/dto"
	"github.com/SscSPs/statement_ledger/internal/export"
	"github.com/SscSPs/statement_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the monthly views, all keyed by payment month.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// RegisterReportingRoutes registers the monthly reporting routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports/months")
	{
		reports.GET("", h.listMonths)
		reports.GET("/:year/:month/summary", h.getMonthlySummary)
		reports.GET("/:year/:month/transactions", h.listMonthlyTransactions)
		reports.GET("/:year/:month/dashboard", h.getDashboard)
		reports.GET("/:year/:month/export", h.exportMonth)
	}
}

// parsePeriod reads the :year and :month path params.
func parsePeriod(c *gin.Context) (domain.YearMonth, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return domain.YearMonth{}, fmt.Errorf("invalid year %q", c.Param("year"))
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return domain.YearMonth{}, fmt.Errorf("invalid month %q", c.Param("month"))
	}
	if err := domain.ValidateYearMonth(year, time.Month(month)); err != nil {
		return domain.YearMonth{}, err
	}
	return domain.YearMonth{Year: year, Month: time.Month(month)}, nil
}

// listMonths godoc
// @Summary List months with data
// @Description Lists the payment months that have at least one entry, newest first
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.MonthsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list months"
// @Security BearerAuth
// @Router /reports/months [get]
func (h *reportingHandler) listMonths(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	months, err := h.reportingService.ListMonths(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list months")
		return
	}

	c.JSON(http.StatusOK, dto.MonthsResponse{Months: dto.ToMonthResponses(months)})
}

// getMonthlySummary godoc
// @Summary Monthly summary
// @Description Totals income, fixed, debit and card entries whose payment date falls in the month
// @Tags reports
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /reports/months/{year}/{month}/summary [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.reportingService.MonthlySummary(c.Request.Context(), ownerID, period.Year, period.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(*summary))
}

// listMonthlyTransactions godoc
// @Summary Monthly transactions
// @Description Lists the month's entries by transaction date, newest first, optionally of one kind
// @Tags reports
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Param   kind query string false "Entry kind" Enums(Income, Fixed, Debit, Card)
// @Success 200 {object} dto.TransactionsResponse
// @Failure 400 {object} map[string]string "Invalid month or kind"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /reports/months/{year}/{month}/transactions [get]
func (h *reportingHandler) listMonthlyTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var kind *domain.EntryKind
	if raw := c.Query("kind"); raw != "" {
		k, err := domain.ParseEntryKind(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		kind = &k
	}

	entries, err := h.reportingService.MonthlyTransactions(c.Request.Context(), ownerID, period.Year, period.Month, kind)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.TransactionsResponse{
		Period:       dto.ToMonthResponse(period),
		Transactions: dto.ToLedgerEntryResponses(entries, nil),
	})
}

// getDashboard godoc
// @Summary Monthly dashboard
// @Description Summary plus card and cash listings of the month, with card names resolved
// @Tags reports
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /reports/months/{year}/{month}/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), ownerID, period.Year, period.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

// exportMonth godoc
// @Summary Export a month as xlsx
// @Description Downloads the month's dashboard as a spreadsheet with summary, card and cash sheets
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to export month"
// @Security BearerAuth
// @Router /reports/months/{year}/{month}/export [get]
func (h *reportingHandler) exportMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), ownerID, period.Year, period.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to export month")
		return
	}

	f, err := export.BuildDashboard(dashboard)
	if err != nil {
		respondError(c, logger, err, "Failed to export month")
		return
	}
	defer f.Close()

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(period)))
	if err := f.Write(c.Writer); err != nil {
		// Headers are already sent, only log.
		logger.Error("Failed to stream workbook", slog.String("error", err.Error()))
	}
}
