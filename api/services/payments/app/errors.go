package app

import "errors"

// Typed errors for the payments app layer. The messages are part of the API
// contract: the price-id error is surfaced verbatim in logs, and the two
// generic failures replace whatever the Stripe SDK returned so that no
// processor detail reaches the caller.
var (
	// ErrPaymentIntentFailed replaces any gateway failure during payment intent creation.
	ErrPaymentIntentFailed = errors.New("Failed to create payment intent.")
	// ErrSubscriptionFailed replaces any gateway failure during subscription creation.
	ErrSubscriptionFailed = errors.New("Failed to create subscription.")
	// ErrPriceIDNotConfigured indicates the subscription price id is missing from config.
	ErrPriceIDNotConfigured = errors.New("Stripe Price ID is not configured.")
)
