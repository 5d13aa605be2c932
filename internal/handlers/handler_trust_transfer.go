package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
	"github.com/SscSPs/trust_ledger_app/internal/middleware"
)

// trustTransferHandler handles trust-to-business transfers.
type trustTransferHandler struct {
	transferService portssvc.TrustTransferSvcFacade
}

func newTrustTransferHandler(ts portssvc.TrustTransferSvcFacade) *trustTransferHandler {
	return &trustTransferHandler{transferService: ts}
}

func registerTrustTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TrustTransferSvcFacade) {
	h := newTrustTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.transferToBusiness)
		transfers.GET("", h.listTransfers)
	}
}

// transferToBusiness godoc
// @Summary Transfer trust funds to the business account
// @Description Moves earned fees out of trust. The trust balance may never go below zero.
// @Tags trust-transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferToBusinessRequest true "Transfer details"
// @Success 201 {object} dto.TrustTransferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Matter or trust account not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification, retry"
// @Failure 422 {object} dto.ErrorResponse "Insufficient trust account balance"
// @Failure 500 {object} dto.ErrorResponse "Failed to transfer"
// @Security BearerAuth
// @Router /trust/transfers [post]
func (h *trustTransferHandler) transferToBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.TransferToBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err, "request format")
		return
	}

	transfer, err := h.transferService.TransferToBusiness(c.Request.Context(), advocateID, req)
	if err != nil {
		respondWithError(c, logger, err, "transferring to business account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrustTransferResponse(transfer))
}

// listTransfers godoc
// @Summary List trust-to-business transfers
// @Tags trust-transfers
// @Produce  json
// @Param   matterId query string false "Matter ID"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} dto.TrustTransferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Trust account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list transfers"
// @Security BearerAuth
// @Router /trust/transfers [get]
func (h *trustTransferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListTrustTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err, "query parameters")
		return
	}

	transfers, err := h.transferService.ListTransfers(c.Request.Context(), advocateID, params)
	if err != nil {
		respondWithError(c, logger, err, "listing transfers")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrustTransferResponses(transfers))
}
