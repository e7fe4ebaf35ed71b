package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"tiffinbox/internal/models/request_models"
	"tiffinbox/internal/services"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreateOrder godoc
// @Summary Create a gateway payment order
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreatePaymentOrderRequest true "Payment order payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/order [post]
func (p *PaymentController) CreateOrder(c *gin.Context) {
	var req request_models.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	intent, err := p.paymentService.CreateIntent(c.Request.Context(),
		middleware.UserID(c), req.AmountMinor, req.Receipt, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, intent, "Payment order created")
}

// Verify godoc
// @Summary Verify a checkout payment signature
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Verification payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/verify [post]
func (p *PaymentController) Verify(c *gin.Context) {
	var req request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.paymentService.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Payment verified")
}

// Webhook godoc
// @Summary Gateway webhook endpoint
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/webhook [post]
func (p *PaymentController) Webhook(c *gin.Context) {
	// The signature covers the exact bytes on the wire, so the body must be
	// read raw before any JSON decoding.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unreadable body")
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	if err := p.paymentService.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "ok")
}
