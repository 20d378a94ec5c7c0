package services

import (
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

// PaymentIntentCreator abstracts the payment gateway for testing.
type PaymentIntentCreator interface {
	CreatePaymentIntent(amount int64, currency, userID string) (clientSecret, intentID string, err error)
}

type StripeService struct {
	SecretKey string
}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey}
}

// CreatePaymentIntent creates a Stripe PaymentIntent for the given amount in
// the smallest currency unit. The user id rides along as metadata.
func (s *StripeService) CreatePaymentIntent(amount int64, currency, userID string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("userId", userID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", err
	}
	return pi.ClientSecret, pi.ID, nil
}
