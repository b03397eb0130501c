package stripegw

import (
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/customer"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/subscription"

	gw "github.com/sk8shop/payment-service/api/services/payments/gateway"
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// client is the Stripe SDK-backed implementation of the gateway.
type client struct{}

// New returns a PaymentGateway backed by the official Stripe SDK.
func New() gw.PaymentGateway { return client{} }

func (client) CreatePaymentIntent(amount int64, currency string) (stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		// Let Stripe pick the payment methods to offer instead of
		// enumerating payment_method_types.
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	piPtr, err := paymentintent.New(params)
	if err != nil {
		return stripe.PaymentIntent{}, err
	}
	if piPtr == nil {
		return stripe.PaymentIntent{}, nil
	}
	return *piPtr, nil
}

func (client) CreateCustomer(email string) (stripe.Customer, error) {
	custPtr, err := customer.New(&stripe.CustomerParams{Email: stripe.String(email)})
	if err != nil {
		return stripe.Customer{}, err
	}
	if custPtr == nil {
		return stripe.Customer{}, nil
	}
	return *custPtr, nil
}

func (client) CreateSubscription(customerID, priceID string) (stripe.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		// The first invoice stays open until the frontend confirms its
		// payment intent with the client secret returned here.
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.AddExpand("latest_invoice.payment_intent")
	subPtr, err := subscription.New(params)
	if err != nil {
		return stripe.Subscription{}, err
	}
	if subPtr == nil {
		return stripe.Subscription{}, nil
	}
	return *subPtr, nil
}
