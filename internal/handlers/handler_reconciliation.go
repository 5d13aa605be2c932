package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
	"github.com/SscSPs/trust_ledger_app/internal/middleware"
)

// reconciliationHandler handles reconciliation reports and sign-offs.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	reconciliation := rg.Group("/reconciliation")
	{
		reconciliation.GET("/report", h.getReport)
		reconciliation.POST("", h.markReconciled)
	}
}

// getReport godoc
// @Summary Generate a reconciliation report
// @Description Replays the ledger over an inclusive date range. With bankBalance the discrepancy against the statement is reported.
// @Tags reconciliation
// @Produce  json
// @Param   startDate query string true "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string true "Inclusive end date (YYYY-MM-DD)"
// @Param   bankBalance query string false "Bank statement balance at endDate"
// @Success 200 {object} dto.ReconciliationReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Trust account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /trust/reconciliation/report [get]
func (h *reconciliationHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ReconciliationReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err, "query parameters")
		return
	}
	// Layout is guaranteed by the datetime binding tag.
	startDate, _ := time.Parse(domain.DateLayout, params.StartDate)
	endDate, _ := time.Parse(domain.DateLayout, params.EndDate)

	var bankBalance *decimal.Decimal
	if params.BankBalance != nil {
		b, err := decimal.NewFromString(*params.BankBalance)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters", Fields: map[string]string{"BankBalance": "numeric"}})
			return
		}
		bankBalance = &b
	}

	report, err := h.reconciliationService.GenerateReport(c.Request.Context(), advocateID, startDate, endDate, bankBalance)
	if err != nil {
		respondWithError(c, logger, err, "generating reconciliation report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationReportResponse(report))
}

// markReconciled godoc
// @Summary Mark the ledger reconciled
// @Description Flags every unreconciled entry dated on or before date and records the reconciled balance. Repeating it is harmless.
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   reconciliation body dto.MarkReconciledRequest true "Sign-off"
// @Success 200 {object} dto.TrustAccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Trust account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to mark reconciled"
// @Security BearerAuth
// @Router /trust/reconciliation [post]
func (h *reconciliationHandler) markReconciled(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.MarkReconciledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err, "request format")
		return
	}
	date, _ := time.Parse(domain.DateLayout, req.Date)

	account, err := h.reconciliationService.MarkReconciled(c.Request.Context(), advocateID, date, req.ReconciledBalance)
	if err != nil {
		respondWithError(c, logger, err, "marking reconciled")
		return
	}

	logger.Info("Trust ledger marked reconciled", slog.String("date", req.Date))
	c.JSON(http.StatusOK, dto.ToTrustAccountResponse(account))
}
