package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	paymentsapp "github.com/sk8shop/payment-service/api/services/payments/app"
)

type noopService struct{}

func (noopService) CreatePaymentIntent(int64, string) (paymentsapp.PaymentIntentResult, error) {
	return paymentsapp.PaymentIntentResult{}, nil
}

func (noopService) CreateSubscription(string) (paymentsapp.SubscriptionResult, error) {
	return paymentsapp.SubscriptionResult{}, nil
}

func TestInit_InjectedServiceShortCircuits(t *testing.T) {
	SetPaymentService(noopService{})
	t.Cleanup(func() { SetPaymentService(nil) })

	// No config is loaded and no Stripe key is required when a service has
	// already been injected.
	assert.NoError(t, Init())
	assert.NotNil(t, GetPaymentService())
}
