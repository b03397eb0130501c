package app

// DefaultCurrency is used when a payment intent request does not name one.
const DefaultCurrency = "usd"

// PaymentIntentResult is the domain response for a one-time payment.
// The client secret comes straight from Stripe and may be empty if the
// processor response lacked one; that is passed through, not treated as an
// error here.
type PaymentIntentResult struct {
	ClientSecret string `json:"clientSecret,omitempty"`
}

// SubscriptionResult is the domain response for a new subscription. The
// client secret belongs to the payment intent of the subscription's first
// invoice and is what the frontend confirms to start billing.
type SubscriptionResult struct {
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret,omitempty"`
}
