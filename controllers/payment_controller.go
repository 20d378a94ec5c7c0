package controllers

import (
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "shophub/common/errors"
	"shophub/middleware"
	"shophub/models"
	"shophub/services"
)

type PaymentController struct {
	stripe   services.PaymentIntentCreator
	checkout *services.CheckoutService
	logger   *zap.Logger
}

func NewPaymentController(stripe services.PaymentIntentCreator, checkout *services.CheckoutService, logger *zap.Logger) *PaymentController {
	return &PaymentController{stripe: stripe, checkout: checkout, logger: logger}
}

// CreateIntent creates a payment intent for the given amount. Amounts arrive
// in currency units and are converted to cents for the gateway.
func (pc *PaymentController) CreateIntent(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Message})
		return
	}

	var req struct {
		Amount   float64 `json:"amount" binding:"required,gt=0"`
		Currency string  `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "usd"
	}

	clientSecret, intentID, err := pc.stripe.CreatePaymentIntent(
		int64(math.Round(req.Amount*100)),
		currency,
		userID.String(),
	)
	if err != nil {
		pc.logger.Error("stripe payment intent failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": apperrors.ErrPaymentFailed.Message + ": " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_secret":     clientSecret,
		"payment_intent_id": intentID,
	})
}

// ConfirmPayment converts the caller's cart into a paid order carrying the
// supplied payment intent id. Confirmation happened client-side; the id is
// recorded as given, not verified with the gateway.
func (pc *PaymentController) ConfirmPayment(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Message})
		return
	}

	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	orderID, appErr := pc.checkout.ConfirmPayment(c.Request.Context(), userID, req.PaymentIntentID, req.ShippingAddress)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
}
