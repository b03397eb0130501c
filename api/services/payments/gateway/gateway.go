package gateway

import stripe "github.com/stripe/stripe-go/v81"

// PaymentGateway abstracts the Stripe SDK operations needed by the app layer.
// Methods return values (not pointers) to respect the project's preference
// to avoid pointer types in public interfaces.
type PaymentGateway interface {
	CreatePaymentIntent(amount int64, currency string) (stripe.PaymentIntent, error)
	CreateCustomer(email string) (stripe.Customer, error)
	CreateSubscription(customerID, priceID string) (stripe.Subscription, error)
}
