package app

import (
	"log/slog"

	gw "github.com/sk8shop/payment-service/api/services/payments/gateway"
)

// Service defines the business operations for the payments domain.
type Service interface {
	CreatePaymentIntent(amount int64, currency string) (PaymentIntentResult, error)
	CreateSubscription(email string) (SubscriptionResult, error)
}

// serviceImpl is a concrete implementation. The price id is captured at
// construction; its absence is only an error once a subscription is attempted.
type serviceImpl struct {
	gw      gw.PaymentGateway
	priceID string
}

func NewService(g gw.PaymentGateway, priceID string) Service {
	return serviceImpl{gw: g, priceID: priceID}
}

// CreatePaymentIntent creates a one-time payment intent and returns its
// client secret. The caller is responsible for having validated amount > 0.
func (s serviceImpl) CreatePaymentIntent(amount int64, currency string) (PaymentIntentResult, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	pi, err := s.gw.CreatePaymentIntent(amount, currency)
	if err != nil {
		slog.Error("error creating payment intent", "err", err)
		return PaymentIntentResult{}, ErrPaymentIntentFailed
	}
	return PaymentIntentResult{ClientSecret: pi.ClientSecret}, nil
}

// CreateSubscription creates a Stripe customer for the email, then a
// subscription on the configured price. The two remote calls are strictly
// sequential; if the second fails the customer is left behind (Stripe owns
// that state, there is nothing to roll back locally).
func (s serviceImpl) CreateSubscription(email string) (SubscriptionResult, error) {
	if s.priceID == "" {
		return SubscriptionResult{}, ErrPriceIDNotConfigured
	}

	cust, err := s.gw.CreateCustomer(email)
	if err != nil {
		slog.Error("error creating customer", "err", err)
		return SubscriptionResult{}, ErrSubscriptionFailed
	}

	sub, err := s.gw.CreateSubscription(cust.ID, s.priceID)
	if err != nil {
		slog.Error("error creating subscription", "err", err)
		return SubscriptionResult{}, ErrSubscriptionFailed
	}

	// The client secret lives on the payment intent of the expanded first
	// invoice. A missing invoice or intent means the response shape is not
	// usable by the frontend, which callers see as the same generic failure.
	if sub.LatestInvoice == nil || sub.LatestInvoice.PaymentIntent == nil {
		slog.Error("subscription response missing expanded payment intent", "subscription_id", sub.ID)
		return SubscriptionResult{}, ErrSubscriptionFailed
	}

	return SubscriptionResult{
		SubscriptionID: sub.ID,
		ClientSecret:   sub.LatestInvoice.PaymentIntent.ClientSecret,
	}, nil
}
