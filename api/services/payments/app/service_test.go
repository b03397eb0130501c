package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v81"
)

type intentCall struct {
	amount   int64
	currency string
}

type subCall struct {
	customerID string
	priceID    string
}

// fakeGateway records every call so tests can assert on exact parameters and
// call counts.
type fakeGateway struct {
	pi      stripe.PaymentIntent
	piErr   error
	cust    stripe.Customer
	custErr error
	sub     stripe.Subscription
	subErr  error

	intentCalls    []intentCall
	customerEmails []string
	subCalls       []subCall
}

func (f *fakeGateway) CreatePaymentIntent(amount int64, currency string) (stripe.PaymentIntent, error) {
	f.intentCalls = append(f.intentCalls, intentCall{amount: amount, currency: currency})
	if f.piErr != nil {
		return stripe.PaymentIntent{}, f.piErr
	}
	return f.pi, nil
}

func (f *fakeGateway) CreateCustomer(email string) (stripe.Customer, error) {
	f.customerEmails = append(f.customerEmails, email)
	if f.custErr != nil {
		return stripe.Customer{}, f.custErr
	}
	return f.cust, nil
}

func (f *fakeGateway) CreateSubscription(customerID, priceID string) (stripe.Subscription, error) {
	f.subCalls = append(f.subCalls, subCall{customerID: customerID, priceID: priceID})
	if f.subErr != nil {
		return stripe.Subscription{}, f.subErr
	}
	return f.sub, nil
}

func Test_CreatePaymentIntent_PassesThroughClientSecret(t *testing.T) {
	gw := &fakeGateway{pi: stripe.PaymentIntent{ClientSecret: "pi_secret_123"}}
	svc := NewService(gw, "price_123")

	result, err := svc.CreatePaymentIntent(1000, "")
	assert.NoError(t, err)
	assert.Equal(t, "pi_secret_123", result.ClientSecret)
	assert.Equal(t, []intentCall{{amount: 1000, currency: "usd"}}, gw.intentCalls)
}

func Test_CreatePaymentIntent_ExplicitCurrency(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, "price_123")

	result, err := svc.CreatePaymentIntent(500, "eur")
	assert.NoError(t, err)
	assert.Empty(t, result.ClientSecret)
	assert.Equal(t, []intentCall{{amount: 500, currency: "eur"}}, gw.intentCalls)
}

func Test_CreatePaymentIntent_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{piErr: errors.New("rate limited by stripe")}
	svc := NewService(gw, "price_123")

	_, err := svc.CreatePaymentIntent(1000, "usd")
	assert.ErrorIs(t, err, ErrPaymentIntentFailed)
	// The upstream detail must not leak through.
	assert.Equal(t, "Failed to create payment intent.", err.Error())
}

func Test_CreatePaymentIntent_NoDeduplication(t *testing.T) {
	gw := &fakeGateway{pi: stripe.PaymentIntent{ClientSecret: "pi_secret_123"}}
	svc := NewService(gw, "price_123")

	_, err := svc.CreatePaymentIntent(1000, "usd")
	assert.NoError(t, err)
	_, err = svc.CreatePaymentIntent(1000, "usd")
	assert.NoError(t, err)
	assert.Equal(t, []intentCall{
		{amount: 1000, currency: "usd"},
		{amount: 1000, currency: "usd"},
	}, gw.intentCalls)
}

func Test_CreateSubscription_Success(t *testing.T) {
	gw := &fakeGateway{
		cust: stripe.Customer{ID: "cus_1"},
		sub: stripe.Subscription{
			ID: "sub_1",
			LatestInvoice: &stripe.Invoice{
				PaymentIntent: &stripe.PaymentIntent{ClientSecret: "secret_1"},
			},
		},
	}
	svc := NewService(gw, "price_123")

	result, err := svc.CreateSubscription("test@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "sub_1", result.SubscriptionID)
	assert.Equal(t, "secret_1", result.ClientSecret)
	assert.Equal(t, []string{"test@example.com"}, gw.customerEmails)
	assert.Equal(t, []subCall{{customerID: "cus_1", priceID: "price_123"}}, gw.subCalls)
}

func Test_CreateSubscription_MissingPriceID(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, "")

	_, err := svc.CreateSubscription("test@example.com")
	assert.ErrorIs(t, err, ErrPriceIDNotConfigured)
	// Fails before any remote call.
	assert.Empty(t, gw.customerEmails)
	assert.Empty(t, gw.subCalls)
}

func Test_CreateSubscription_CustomerCreationFailure(t *testing.T) {
	gw := &fakeGateway{custErr: errors.New("connection reset")}
	svc := NewService(gw, "price_123")

	_, err := svc.CreateSubscription("test@example.com")
	assert.ErrorIs(t, err, ErrSubscriptionFailed)
	assert.Empty(t, gw.subCalls)
}

func Test_CreateSubscription_SubscriptionCreationFailure(t *testing.T) {
	gw := &fakeGateway{
		cust:   stripe.Customer{ID: "cus_1"},
		subErr: errors.New("no such price"),
	}
	svc := NewService(gw, "price_123")

	_, err := svc.CreateSubscription("test@example.com")
	assert.ErrorIs(t, err, ErrSubscriptionFailed)
	// No compensating delete of the created customer; exactly one call happened.
	assert.Equal(t, []string{"test@example.com"}, gw.customerEmails)
}

func Test_CreateSubscription_MissingExpandedInvoice(t *testing.T) {
	cases := map[string]stripe.Subscription{
		"nil latest invoice": {ID: "sub_1"},
		"nil payment intent": {ID: "sub_1", LatestInvoice: &stripe.Invoice{}},
		"empty response":     {},
	}
	for name, sub := range cases {
		t.Run(name, func(t *testing.T) {
			gw := &fakeGateway{cust: stripe.Customer{ID: "cus_1"}, sub: sub}
			svc := NewService(gw, "price_123")

			_, err := svc.CreateSubscription("test@example.com")
			assert.ErrorIs(t, err, ErrSubscriptionFailed)
		})
	}
}
