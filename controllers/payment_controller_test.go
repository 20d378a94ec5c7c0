package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"shophub/middleware"
)

type fakeIntentCreator struct {
	clientSecret string
	intentID     string
	err          error
	lastAmount   int64
	lastCurrency string
}

func (f *fakeIntentCreator) CreatePaymentIntent(amount int64, currency, userID string) (string, string, error) {
	f.lastAmount = amount
	f.lastCurrency = currency
	if f.err != nil {
		return "", "", f.err
	}
	return f.clientSecret, f.intentID, nil
}

func paymentRouter(creator *fakeIntentCreator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()
	controller := NewPaymentController(creator, nil, logger)

	r := gin.New()
	r.POST("/payments/intent", func(c *gin.Context) {
		c.Set(middleware.UserContextKey, uuid.New())
	}, controller.CreateIntent)
	return r
}

func TestCreateIntent_ConvertsAmountToCents(t *testing.T) {
	creator := &fakeIntentCreator{clientSecret: "cs_test", intentID: "pi_test"}
	r := paymentRouter(creator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments/intent",
		strings.NewReader(`{"amount": 19.99, "currency": "USD"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1999), creator.lastAmount)
	assert.Equal(t, "usd", creator.lastCurrency)
	assert.Contains(t, w.Body.String(), "cs_test")
}

func TestCreateIntent_GatewayFailure(t *testing.T) {
	creator := &fakeIntentCreator{err: errors.New("card declined")}
	r := paymentRouter(creator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments/intent",
		strings.NewReader(`{"amount": 19.99}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Payment failed: card declined")
}

func TestCreateIntent_RejectsNonPositiveAmount(t *testing.T) {
	creator := &fakeIntentCreator{}
	r := paymentRouter(creator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments/intent",
		strings.NewReader(`{"amount": 0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), creator.lastAmount)
}
