package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements ICheckoutGateway on top of Mercado Pago
// Checkout Pro.
//
// Session identity: the gateway issues an opaque session id and pins it to the
// preference as external_reference (and metadata). Mercado Pago propagates
// external_reference to every payment made against the preference, which is
// the provider's documented reconciliation key, so both the status search and
// the webhook path recover the session id without any local state.

type MercadoPagoGateway struct {
	prefClient    preference.Client
	paymentClient payment.Client
	webhookSecret string
	mockMode      bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		prefClient:    preference.NewClient(cfg),
		paymentClient: payment.NewClient(cfg),
		webhookSecret: strings.TrimSpace(os.Getenv("MERCADOPAGO_WEBHOOK_SECRET")),
	}, nil
}

func (g *MercadoPagoGateway) CreateSession(ctx context.Context, amount float64, currency, successURL, cancelURL string, metadata map[string]string) (interfaces.CheckoutSession, error) {
	sessionID := uuid.NewString()

	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock create session session_id=%s amount=%.2f", sessionID, amount)
		return interfaces.CheckoutSession{
			SessionID:   sessionID,
			RedirectURL: "https://sandbox.mercadopago.test/checkout/" + sessionID,
		}, nil
	}
	if g == nil || g.prefClient == nil {
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	title := "Madinah historical tour"
	if name := metadata["site_name"]; name != "" {
		title = fmt.Sprintf("Guided tour: %s", name)
	}

	md := map[string]any{"session_id": sessionID}
	for k, v := range metadata {
		md[k] = v
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         sessionID,
				Title:      title,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: currency,
			},
		},
		ExternalReference: sessionID,
		Metadata:          md,
		BackURLs: &preference.BackURLsRequest{
			Success: successURL,
			Pending: successURL,
			Failure: cancelURL,
		},
		AutoReturn: "approved",
	}

	log.Printf("[payment][gateway] create session start session_id=%s amount=%.2f currency=%s", sessionID, amount, currency)
	resp, err := g.prefClient.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed err=%v", err)
		return interfaces.CheckoutSession{}, err
	}
	log.Printf("[payment][gateway] create session success session_id=%s preference_id=%s", sessionID, resp.ID)

	return interfaces.CheckoutSession{SessionID: sessionID, RedirectURL: resp.InitPoint}, nil
}

// GetStatus resolves the live status of a session. Payments carry the session
// id as external_reference; when no payment exists yet the preference search
// distinguishes a not-yet-paid session from an unknown one.
func (g *MercadoPagoGateway) GetStatus(ctx context.Context, sessionID string) (entities.TransactionStatus, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock get status session_id=%s", sessionID)
		return entities.TransactionStatusPaid, nil
	}
	if g == nil || g.paymentClient == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] get status start session_id=%s", sessionID)
	res, err := g.paymentClient.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"external_reference": sessionID},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk payment search failed session_id=%s err=%v", sessionID, err)
		return "", err
	}

	if res != nil && len(res.Results) > 0 {
		status := reducePaymentStatuses(res.Results)
		log.Printf("[payment][gateway] get status success session_id=%s status=%s payments=%d", sessionID, status, len(res.Results))
		return status, nil
	}

	prefs, err := g.prefClient.Search(ctx, preference.SearchRequest{
		Limit:   1,
		Filters: map[string]string{"external_reference": sessionID},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk preference search failed session_id=%s err=%v", sessionID, err)
		return "", err
	}
	if prefs == nil || len(prefs.Elements) == 0 {
		log.Printf("[payment][gateway] session unknown session_id=%s", sessionID)
		return "", interfaces.ErrSessionNotFound
	}

	if exp := prefs.Elements[0].ExpirationDateTo; !exp.IsZero() && exp.Before(time.Now()) {
		log.Printf("[payment][gateway] session expired session_id=%s", sessionID)
		return entities.TransactionStatusExpired, nil
	}

	log.Printf("[payment][gateway] get status success session_id=%s status=pending (no payments yet)", sessionID)
	return entities.TransactionStatusPending, nil
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// VerifyAndParseWebhook checks the x-signature HMAC over the notification and
// normalizes it into a session observation. The payment referenced by the
// event is re-fetched from the provider rather than trusted from the body.
func (g *MercadoPagoGateway) VerifyAndParseWebhook(ctx context.Context, rawBody []byte, signatureHeader string) (string, entities.TransactionStatus, error) {
	if g != nil && g.mockMode {
		var evt struct {
			SessionID string `json:"session_id"`
			Status    string `json:"status"`
		}
		if err := json.Unmarshal(rawBody, &evt); err != nil || evt.SessionID == "" {
			return "", "", interfaces.ErrInvalidWebhookSignature
		}
		log.Printf("[payment][gateway] mock webhook session_id=%s status=%s", evt.SessionID, evt.Status)
		return evt.SessionID, entities.TransactionStatus(evt.Status), nil
	}
	if g == nil || g.paymentClient == nil {
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}

	var evt webhookEvent
	if err := json.Unmarshal(rawBody, &evt); err != nil {
		log.Printf("[payment][gateway] webhook body unmarshal failed err=%v", err)
		return "", "", interfaces.ErrInvalidWebhookSignature
	}

	if err := g.verifySignature(evt.Data.ID.String(), signatureHeader); err != nil {
		return "", "", err
	}

	if evt.Type != "payment" {
		log.Printf("[payment][gateway] webhook event ignored type=%s", evt.Type)
		return "", "", interfaces.ErrWebhookEventIgnored
	}

	paymentID, err := strconv.Atoi(evt.Data.ID.String())
	if err != nil {
		log.Printf("[payment][gateway] webhook invalid payment id %q", evt.Data.ID.String())
		return "", "", interfaces.ErrWebhookEventIgnored
	}

	pm, err := g.paymentClient.Get(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][gateway] sdk payment get failed payment_id=%d err=%v", paymentID, err)
		return "", "", err
	}
	if pm.ExternalReference == "" {
		log.Printf("[payment][gateway] webhook payment without external_reference payment_id=%d", paymentID)
		return "", "", interfaces.ErrWebhookEventIgnored
	}

	status := mapPaymentStatus(pm.Status)
	log.Printf("[payment][gateway] webhook parsed payment_id=%d session_id=%s status=%s", paymentID, pm.ExternalReference, status)
	return pm.ExternalReference, status, nil
}

// verifySignature validates the x-signature header (format "ts=...,v1=...")
// against an HMAC-SHA256 of the documented manifest "id:<data.id>;ts:<ts>;".
func (g *MercadoPagoGateway) verifySignature(dataID, signatureHeader string) error {
	if g.webhookSecret == "" {
		log.Printf("[payment][gateway] MERCADOPAGO_WEBHOOK_SECRET not set; rejecting webhook")
		return interfaces.ErrInvalidWebhookSignature
	}
	if strings.TrimSpace(signatureHeader) == "" {
		return interfaces.ErrInvalidWebhookSignature
	}

	var ts, v1 string
	for _, part := range strings.Split(signatureHeader, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "ts":
			ts = kv[1]
		case "v1":
			v1 = kv[1]
		}
	}
	if ts == "" || v1 == "" {
		return interfaces.ErrInvalidWebhookSignature
	}

	manifest := fmt.Sprintf("id:%s;ts:%s;", strings.ToLower(dataID), ts)
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
		log.Printf("[payment][gateway] webhook signature mismatch")
		return interfaces.ErrInvalidWebhookSignature
	}
	return nil
}

// reducePaymentStatuses folds all payments of a session into one status.
// Any approved payment settles the session; otherwise a still-open payment
// keeps it pending; only a set of dead payments reads as failed.
func reducePaymentStatuses(results []payment.Response) entities.TransactionStatus {
	anyOpen := false
	for _, pm := range results {
		switch mapPaymentStatus(pm.Status) {
		case entities.TransactionStatusPaid:
			return entities.TransactionStatusPaid
		case entities.TransactionStatusPending:
			anyOpen = true
		}
	}
	if anyOpen {
		return entities.TransactionStatusPending
	}
	return entities.TransactionStatusFailed
}

func mapPaymentStatus(providerStatus string) entities.TransactionStatus {
	switch providerStatus {
	case "approved":
		return entities.TransactionStatusPaid
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.TransactionStatusFailed
	default:
		// pending, in_process, authorized, in_mediation
		return entities.TransactionStatusPending
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
