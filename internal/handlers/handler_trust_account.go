package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
	"github.com/SscSPs/trust_ledger_app/internal/middleware"
)

// trustAccountHandler handles HTTP requests on the advocate's trust account record.
type trustAccountHandler struct {
	accountService portssvc.TrustAccountSvcFacade
}

func newTrustAccountHandler(as portssvc.TrustAccountSvcFacade) *trustAccountHandler {
	return &trustAccountHandler{accountService: as}
}

func registerTrustAccountRoutes(rg *gin.RouterGroup, accountService portssvc.TrustAccountSvcFacade) {
	h := newTrustAccountHandler(accountService)

	account := rg.Group("/account")
	{
		account.GET("", h.getTrustAccount)
		account.PUT("", h.updateTrustAccount)
	}
}

// getTrustAccount godoc
// @Summary Get the trust account
// @Description Retrieves the logged-in advocate's trust account, including its current balance
// @Tags trust-account
// @Produce  json
// @Success 200 {object} dto.TrustAccountResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Trust account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve trust account"
// @Security BearerAuth
// @Router /trust/account [get]
func (h *trustAccountHandler) getTrustAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.accountService.GetTrustAccount(c.Request.Context(), advocateID)
	if err != nil {
		respondWithError(c, logger, err, "getting trust account")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrustAccountResponse(account))
}

// updateTrustAccount godoc
// @Summary Update trust account details
// @Description Updates bank details, reconciliation day and low-balance threshold. Balances cannot be edited.
// @Tags trust-account
// @Accept  json
// @Produce  json
// @Param   account body dto.UpdateTrustAccountRequest true "Fields to update"
// @Success 200 {object} dto.TrustAccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Trust account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update trust account"
// @Security BearerAuth
// @Router /trust/account [put]
func (h *trustAccountHandler) updateTrustAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateTrustAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err, "request format")
		return
	}

	account, err := h.accountService.UpdateTrustAccountDetails(c.Request.Context(), advocateID, req)
	if err != nil {
		respondWithError(c, logger, err, "updating trust account")
		return
	}

	logger.Info("Trust account details updated", slog.String("trust_account_id", account.TrustAccountID))
	c.JSON(http.StatusOK, dto.ToTrustAccountResponse(account))
}
