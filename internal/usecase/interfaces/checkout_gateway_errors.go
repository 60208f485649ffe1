package interfaces

import "errors"

// Sentinel errors every ICheckoutGateway implementation must return, so the
// usecases can classify failures without knowing the concrete provider.

var (
	ErrSessionNotFound         = errors.New("checkout session not found")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrWebhookEventIgnored     = errors.New("webhook event ignored")
)
