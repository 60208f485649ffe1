package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidBookingID   = errors.New("invalid booking id")
	ErrBookingNotPending  = errors.New("booking is not pending")
	ErrCheckoutInProgress = errors.New("booking already has a pending checkout")
)

const defaultCheckoutCurrency = "BRL"

// ICheckoutUseCase opens checkout sessions for pending bookings.

type ICheckoutUseCase interface {
	StartCheckout(ctx context.Context, bookingID, successURL, cancelURL string) (interfaces.CheckoutSession, error)
}

type CheckoutUseCase struct {
	txRepo      interfaces.IPaymentTransactionRepository
	bookingRepo interfaces.IBookingRepository
	gateway     interfaces.ICheckoutGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(txRepo interfaces.IPaymentTransactionRepository, bookingRepo interfaces.IBookingRepository, gateway interfaces.ICheckoutGateway) *CheckoutUseCase {
	return &CheckoutUseCase{txRepo: txRepo, bookingRepo: bookingRepo, gateway: gateway}
}

// StartCheckout requests a provider session for the booking total and durably
// records the attempt as a pending PaymentTransaction.
//
// Gating: the booking must exist and still be pending, and at most one
// transaction per booking may be pending at a time. Retried attempts after a
// failed or expired one are allowed.
//
// If the transaction write fails after the provider session was created the
// session id must not be lost silently: it is logged with a distinct marker
// so an operator can reconcile the orphaned session out-of-band. No automatic
// retry happens here.
func (u *CheckoutUseCase) StartCheckout(ctx context.Context, bookingID, successURL, cancelURL string) (interfaces.CheckoutSession, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return interfaces.CheckoutSession{}, ErrInvalidBookingID
	}
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured booking_id=%s", bookingID)
		return interfaces.CheckoutSession{}, errors.New("checkout gateway not configured")
	}

	log.Printf("[checkout][usecase] start booking_id=%s", bookingID)
	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("[checkout][usecase] booking lookup failed booking_id=%s err=%v", bookingID, err)
		return interfaces.CheckoutSession{}, err
	}
	if booking.ID == "" {
		log.Printf("[checkout][usecase] booking not found booking_id=%s", bookingID)
		return interfaces.CheckoutSession{}, ErrBookingNotFound
	}
	if booking.Status != entities.BookingStatusPending {
		log.Printf("[checkout][usecase] booking not pending booking_id=%s status=%s", bookingID, booking.Status)
		return interfaces.CheckoutSession{}, ErrBookingNotPending
	}

	existing, err := u.txRepo.ListByBookingID(ctx, bookingID)
	if err != nil {
		log.Printf("[checkout][usecase] transaction list failed booking_id=%s err=%v", bookingID, err)
		return interfaces.CheckoutSession{}, err
	}
	for _, tx := range existing {
		if tx.Status == entities.TransactionStatusPending {
			log.Printf("[checkout][usecase] pending checkout already open booking_id=%s tx_id=%s session_id=%s", bookingID, tx.ID, tx.SessionID)
			return interfaces.CheckoutSession{}, ErrCheckoutInProgress
		}
	}

	currency := getenvDefault("CHECKOUT_CURRENCY", defaultCheckoutCurrency)
	metadata := map[string]string{
		"booking_id":  booking.ID,
		"site_name":   booking.SiteName,
		"payer_email": booking.Email,
		"group_size":  strconv.Itoa(booking.GroupSize),
	}

	log.Printf("[checkout][usecase] creating provider session booking_id=%s amount=%.2f currency=%s", bookingID, booking.TotalPrice, currency)
	session, err := u.gateway.CreateSession(ctx, booking.TotalPrice, currency, successURL, cancelURL, metadata)
	if err != nil {
		log.Printf("[checkout][usecase] provider session failed booking_id=%s err=%v", bookingID, err)
		return interfaces.CheckoutSession{}, err
	}

	now := time.Now().UTC()
	tx := entities.PaymentTransaction{
		ID:         uuid.NewString(),
		SessionID:  session.SessionID,
		BookingID:  booking.ID,
		Amount:     booking.TotalPrice,
		Currency:   currency,
		PayerEmail: booking.Email,
		Metadata:   metadata,
		Status:     entities.TransactionStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := u.txRepo.Create(ctx, tx); err != nil {
		// The provider session exists but we have no durable record of it.
		log.Printf("[checkout][usecase] ORPHANED SESSION transaction create failed booking_id=%s session_id=%s err=%v", bookingID, session.SessionID, err)
		return interfaces.CheckoutSession{}, err
	}

	log.Printf("[checkout][usecase] success booking_id=%s tx_id=%s session_id=%s", bookingID, tx.ID, session.SessionID)
	return session, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
