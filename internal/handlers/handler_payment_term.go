package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/dto"
	"github.com/gin-gonic/gin"
)

type paymentTermHandler struct {
	termService portssvc.PaymentTermSvcFacade
}

// RegisterPaymentTermRoutes registers the payment term routes on an authenticated group.
func RegisterPaymentTermRoutes(rg *gin.RouterGroup, termService portssvc.PaymentTermSvcFacade) {
	h := &paymentTermHandler{termService: termService}

	terms := rg.Group("/payment-terms")
	{
		terms.GET("", h.listPaymentTerms)
		terms.POST("", h.createPaymentTerm)
		terms.DELETE("/:id", h.deletePaymentTerm)
	}
}

// listPaymentTerms godoc
// @Summary List payment terms
// @Description Lists the system defaults and the caller's own terms, shortest net days first
// @Tags payment-terms
// @Produce json
// @Success 200 {array} dto.PaymentTermResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-terms [get]
func (h *paymentTermHandler) listPaymentTerms(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	terms, err := h.termService.ListVisiblePaymentTerms(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list payment terms")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentTermResponses(terms))
}

// createPaymentTerm godoc
// @Summary Create a payment term
// @Description Creates a term owned by the caller. Discount percent and days go together.
// @Tags payment-terms
// @Accept json
// @Produce json
// @Param term body dto.CreatePaymentTermRequest true "Payment term"
// @Success 201 {object} dto.PaymentTermResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-terms [post]
func (h *paymentTermHandler) createPaymentTerm(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	term, err := h.termService.CreatePaymentTerm(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create payment term")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentTermResponse(term))
}

// deletePaymentTerm godoc
// @Summary Delete a payment term
// @Description Only the caller's own terms can be deleted. Existing invoices keep their due date and discount.
// @Tags payment-terms
// @Param id path string true "Payment term ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-terms/{id} [delete]
func (h *paymentTermHandler) deletePaymentTerm(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	termID, ok := parseIDParam(c, "id", "payment term")
	if !ok {
		return
	}
	if err := h.termService.DeletePaymentTerm(c.Request.Context(), termID, userID); err != nil {
		respondWithError(c, err, "Failed to delete payment term")
		return
	}
	c.Status(http.StatusNoContent)
}
