package handlers

import (
	"errors"
	"io"
	"log"
	request "madinah_tours/internal/adapter/http/dto/request"
	response "madinah_tours/internal/adapter/http/dto/response"
	"madinah_tours/internal/usecase"
	"madinah_tours/internal/usecase/interfaces"
	"madinah_tours/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

const webhookSignatureHeader = "x-signature"

// PaymentHandler handles HTTP requests for checkout sessions and for the two
// reconciliation channels (status poll and provider webhook).

type PaymentHandler struct {
	checkout  usecase.ICheckoutUseCase
	reconcile usecase.IPaymentReconciliationUseCase
}

func NewPaymentHandler(checkout usecase.ICheckoutUseCase, reconcile usecase.IPaymentReconciliationUseCase) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, reconcile: reconcile}
}

// StartCheckoutSession opens a provider checkout session for a pending booking.
func (h *PaymentHandler) StartCheckoutSession(c *gin.Context) {
	var payload request.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] checkout invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] checkout start booking_id=%s", payload.BookingID)
	session, err := h.checkout.StartCheckout(c.Request.Context(), payload.BookingID, payload.SuccessURL, payload.CancelURL)
	if err != nil {
		log.Printf("[payment][handler] checkout failed booking_id=%s err=%v", payload.BookingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout success booking_id=%s session_id=%s", payload.BookingID, session.SessionID)

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// GetPaymentStatus serves the client poll: it fetches the live session status
// from the provider, reconciles it into storage, and returns the stored state.
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[payment][handler] status start session_id=%s", sessionID)

	status, outcome, err := h.reconcile.CheckStatus(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[payment][handler] status failed session_id=%s err=%v", sessionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] status success session_id=%s status=%s outcome=%s", sessionID, status, outcome)

	c.JSON(http.StatusOK, response.PaymentStatusResponse{
		SessionID: sessionID,
		Status:    string(status),
		Outcome:   string(outcome),
	})
}

// HandleWebhook receives provider notifications. A notification for a session
// this service never issued is acknowledged with 200 so the provider stops
// redelivering it; a bad signature is rejected before any state is touched.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[payment][handler] webhook body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.reconcile.HandleWebhook(c.Request.Context(), rawBody, c.GetHeader(webhookSignatureHeader))
	if err != nil {
		if errors.Is(err, usecase.ErrTransactionNotFound) {
			log.Printf("[payment][handler] webhook for unknown session acknowledged")
			c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
			return
		}
		log.Printf("[payment][handler] webhook failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] webhook success outcome=%s", outcome)

	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true, Outcome: string(outcome)})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidObservedStatus), errors.Is(err, interfaces.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound), errors.Is(err, interfaces.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Payment session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotPending):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PENDING", "Booking is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutInProgress):
		return pkg.NewDomainErrorSimple("CHECKOUT_IN_PROGRESS", "Booking already has a pending checkout", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
