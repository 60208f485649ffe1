package interfaces

import (
	"context"
	"madinah_tours/internal/domain/entities"
)

// CheckoutSession is the provider-side handle for one payment attempt.

type CheckoutSession struct {
	SessionID   string
	RedirectURL string
}

// ICheckoutGateway abstracts the external payment provider (e.g. Mercado Pago
// Checkout Pro).
//
// The gateway is assumed fallible and possibly slow; it carries its own
// timeout/retry policy. Sessions exist only on the provider side - the
// reconciliation engine never creates local state from a gateway observation.
type ICheckoutGateway interface {
	// CreateSession opens a checkout session for the given amount. Metadata is
	// attached to the session and echoed back on provider events so payments
	// can be reconciled to bookings.
	CreateSession(ctx context.Context, amount float64, currency, successURL, cancelURL string, metadata map[string]string) (CheckoutSession, error)

	// GetStatus asks the provider for the current status of a session.
	// Returns ErrSessionNotFound when the provider does not know the session.
	GetStatus(ctx context.Context, sessionID string) (entities.TransactionStatus, error)

	// VerifyAndParseWebhook validates the provider signature over the raw body
	// and normalizes the event into a session observation. Returns
	// ErrInvalidWebhookSignature on a bad/missing signature and
	// ErrWebhookEventIgnored for event types that carry no payment status.
	VerifyAndParseWebhook(ctx context.Context, rawBody []byte, signatureHeader string) (sessionID string, status entities.TransactionStatus, err error)
}
