package bootstrap

import (
	"fmt"
	"sync"

	"github.com/sk8shop/payment-service/api/config"
	paymentsapp "github.com/sk8shop/payment-service/api/services/payments/app"
	stripegw "github.com/sk8shop/payment-service/api/services/payments/gateway/stripe"
)

var paymentService paymentsapp.Service
var initOnce sync.Once
var initErr error

// Init initializes config and the Stripe client, and wires the payment service.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if paymentService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	stripegw.SetKey(config.AppConfig.StripeSecretKey)

	paymentService = paymentsapp.NewService(stripegw.New(), config.AppConfig.StripePriceID)
	return nil
}

func GetPaymentService() paymentsapp.Service { return paymentService }

// SetPaymentService allows tests to inject a stub implementation.
func SetPaymentService(s paymentsapp.Service) { paymentService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
