package response

import "madinah_tours/internal/usecase/interfaces"

// CheckoutSessionResponse returns the provider session handle unmodified.
type CheckoutSessionResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

func FromCheckoutSession(s interfaces.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{SessionID: s.SessionID, RedirectURL: s.RedirectURL}
}

// PaymentStatusResponse is the poll endpoint's view of a session after the
// fresh observation was applied.
type PaymentStatusResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Outcome   string `json:"outcome"`
}

// WebhookAckResponse acknowledges a durably accepted provider notification.
type WebhookAckResponse struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome,omitempty"`
}
