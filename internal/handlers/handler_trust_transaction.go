package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
	"github.com/SscSPs/trust_ledger_app/internal/middleware"
)

// trustTransactionHandler handles HTTP requests that append to or read the trust ledger.
type trustTransactionHandler struct {
	transactionService portssvc.TrustTransactionSvcFacade
}

func newTrustTransactionHandler(ts portssvc.TrustTransactionSvcFacade) *trustTransactionHandler {
	return &trustTransactionHandler{transactionService: ts}
}

func registerTrustTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TrustTransactionSvcFacade) {
	h := newTrustTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("/deposits", h.recordDeposit)
		transactions.POST("/drawdowns", h.recordDrawdown)
		transactions.POST("/refunds", h.recordRefund)
		transactions.POST("/adjustments", h.recordAdjustment)
	}
}

// recordDeposit godoc
// @Summary Record a deposit
// @Description Records money received into trust for a matter and issues a receipt number
// @Tags trust-transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.RecordTransactionRequest true "Deposit details"
// @Success 201 {object} dto.TrustTransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Matter or trust account not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification, retry"
// @Failure 500 {object} dto.ErrorResponse "Failed to record deposit"
// @Security BearerAuth
// @Router /trust/transactions/deposits [post]
func (h *trustTransactionHandler) recordDeposit(c *gin.Context) {
	h.record(c, domain.Deposit, h.transactionService.RecordDeposit)
}

// recordDrawdown godoc
// @Summary Record a drawdown
// @Description Records money leaving trust for a matter. Rejected if the balance would go below zero.
// @Tags trust-transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.RecordTransactionRequest true "Drawdown details"
// @Success 201 {object} dto.TrustTransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Matter or trust account not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification, retry"
// @Failure 422 {object} dto.ErrorResponse "Insufficient trust account balance"
// @Failure 500 {object} dto.ErrorResponse "Failed to record drawdown"
// @Security BearerAuth
// @Router /trust/transactions/drawdowns [post]
func (h *trustTransactionHandler) recordDrawdown(c *gin.Context) {
	h.record(c, domain.Drawdown, h.transactionService.RecordDrawdown)
}

// recordRefund godoc
// @Summary Record a refund
// @Tags trust-transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.RecordTransactionRequest true "Refund details"
// @Success 201 {object} dto.TrustTransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Matter or trust account not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification, retry"
// @Failure 500 {object} dto.ErrorResponse "Failed to record refund"
// @Security BearerAuth
// @Router /trust/transactions/refunds [post]
func (h *trustTransactionHandler) recordRefund(c *gin.Context) {
	h.record(c, domain.Refund, h.transactionService.RecordRefund)
}

// recordAdjustment godoc
// @Summary Record an adjustment
// @Description Records a correcting entry. Direction defaults to increase; a decrease is checked for sufficient funds.
// @Tags trust-transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.RecordTransactionRequest true "Adjustment details"
// @Success 201 {object} dto.TrustTransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Matter or trust account not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification, retry"
// @Failure 422 {object} dto.ErrorResponse "Insufficient trust account balance"
// @Failure 500 {object} dto.ErrorResponse "Failed to record adjustment"
// @Security BearerAuth
// @Router /trust/transactions/adjustments [post]
func (h *trustTransactionHandler) recordAdjustment(c *gin.Context) {
	h.record(c, domain.Adjustment, h.transactionService.RecordAdjustment)
}

type recordFunc func(ctx context.Context, advocateID string, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error)

func (h *trustTransactionHandler) record(c *gin.Context, txType domain.TransactionType, recordTxn recordFunc) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("transaction_type", string(txType)))
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err, "request format")
		return
	}

	txn, err := recordTxn(c.Request.Context(), advocateID, req)
	if err != nil {
		respondWithError(c, logger, err, "recording "+string(txType))
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrustTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List trust transactions
// @Description Retrieves a filtered, paginated list of the advocate's ledger entries, newest first
// @Tags trust-transactions
// @Produce  json
// @Param   matterId query string false "Matter ID"
// @Param   retainerId query string false "Retainer agreement ID"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   type query string false "Transaction type" Enums(deposit, drawdown, refund, transfer, adjustment)
// @Param   reconciled query bool false "Reconciliation state"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListTrustTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Trust account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /trust/transactions [get]
func (h *trustTransactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListTrustTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err, "query parameters")
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), advocateID, params)
	if err != nil {
		respondWithError(c, logger, err, "listing trust transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}
