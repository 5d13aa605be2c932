package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
	"github.com/SscSPs/trust_ledger_app/internal/middleware"
)

type complianceHandler struct {
	complianceService portssvc.ComplianceSvcFacade
}

func newComplianceHandler(cs portssvc.ComplianceSvcFacade) *complianceHandler {
	return &complianceHandler{complianceService: cs}
}

func registerComplianceRoutes(rg *gin.RouterGroup, complianceService portssvc.ComplianceSvcFacade) {
	h := newComplianceHandler(complianceService)

	compliance := rg.Group("/compliance")
	{
		compliance.GET("", h.checkForViolations)
		compliance.POST("/alert-sent", h.markAlertSent)
	}
}

// checkForViolations godoc
// @Summary Check trust account compliance
// @Description Reports a negative balance violation or a balance below the low-balance threshold
// @Tags compliance
// @Produce  json
// @Success 200 {object} dto.ViolationStatusResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Trust account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to check compliance"
// @Security BearerAuth
// @Router /trust/compliance [get]
func (h *complianceHandler) checkForViolations(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	status, err := h.complianceService.CheckForViolations(c.Request.Context(), advocateID)
	if err != nil {
		respondWithError(c, logger, err, "checking compliance")
		return
	}

	c.JSON(http.StatusOK, dto.ToViolationStatusResponse(status))
}

// markAlertSent godoc
// @Summary Record that a negative balance alert was sent
// @Tags compliance
// @Produce  json
// @Success 200 {object} dto.TrustAccountResponse
// @Failure 400 {object} dto.ErrorResponse "Account balance is not negative"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Trust account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to record alert"
// @Security BearerAuth
// @Router /trust/compliance/alert-sent [post]
func (h *complianceHandler) markAlertSent(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	advocateID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Advocate ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.complianceService.MarkAlertSent(c.Request.Context(), advocateID)
	if err != nil {
		respondWithError(c, logger, err, "recording alert")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrustAccountResponse(account))
}
