package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase/interfaces"
)

var (
	ErrTransactionNotFound   = errors.New("payment transaction not found")
	ErrInvalidSessionID      = errors.New("invalid session id")
	ErrInvalidObservedStatus = errors.New("invalid observed status")
)

// IPaymentReconciliationUseCase keeps booking state consistent with payment
// outcomes delivered through two independent channels: a client-driven status
// poll and a provider-pushed webhook. Neither channel guarantees ordering and
// both may redeliver, so Observe must be safe to call any number of times,
// concurrently, for the same session.

type IPaymentReconciliationUseCase interface {
	Observe(ctx context.Context, sessionID string, observed entities.TransactionStatus, source entities.ObservationSource) (entities.Outcome, entities.PaymentTransaction, error)
	CheckStatus(ctx context.Context, sessionID string) (entities.TransactionStatus, entities.Outcome, error)
	HandleWebhook(ctx context.Context, rawBody []byte, signatureHeader string) (entities.Outcome, error)
}

type PaymentReconciliationUseCase struct {
	txRepo      interfaces.IPaymentTransactionRepository
	bookingRepo interfaces.IBookingRepository
	gateway     interfaces.ICheckoutGateway
}

var _ IPaymentReconciliationUseCase = (*PaymentReconciliationUseCase)(nil)

func NewPaymentReconciliationUseCase(txRepo interfaces.IPaymentTransactionRepository, bookingRepo interfaces.IBookingRepository, gateway interfaces.ICheckoutGateway) *PaymentReconciliationUseCase {
	return &PaymentReconciliationUseCase{txRepo: txRepo, bookingRepo: bookingRepo, gateway: gateway}
}

// Observe applies one status observation to the transaction identified by
// sessionID and, when this call wins a paid transition, confirms the booking.
//
// The commit point is the repository's conditional write (status <> paid).
// The initial read only informs the decision; two racing callers may both get
// past it, but exactly one conditional write matches. The loser degrades to a
// no-op. Booking confirmation is a second independent conditional write
// (status = pending); the two writes do not succeed-or-fail together. A crash
// between them is healed on replay: an observation against an already-paid
// transaction re-attempts the conditional booking confirm before reporting
// NoOp, so a booking left pending by a partial run still gets confirmed.
func (u *PaymentReconciliationUseCase) Observe(ctx context.Context, sessionID string, observed entities.TransactionStatus, source entities.ObservationSource) (entities.Outcome, entities.PaymentTransaction, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.OutcomeNoOp, entities.PaymentTransaction{}, ErrInvalidSessionID
	}
	if !entities.IsValidTransactionStatus(observed) {
		return entities.OutcomeNoOp, entities.PaymentTransaction{}, ErrInvalidObservedStatus
	}

	tx, err := u.txRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		log.Printf("[reconcile][usecase] transaction lookup failed session_id=%s source=%s err=%v", sessionID, source, err)
		return entities.OutcomeNoOp, entities.PaymentTransaction{}, err
	}
	if tx.ID == "" {
		log.Printf("[reconcile][usecase] unknown session session_id=%s source=%s", sessionID, source)
		return entities.OutcomeNoOp, entities.PaymentTransaction{}, ErrTransactionNotFound
	}

	// paid is absorbing: any observation after confirmation is a duplicate or
	// stale delivery and must not change the transaction. The conditional
	// booking confirm is still replayed so a crash between the transaction
	// write and the booking write heals here; it matches nothing once the
	// booking left pending.
	if tx.Status == entities.TransactionStatusPaid {
		if _, repaired, rerr := u.bookingRepo.UpdateStatusIfPending(ctx, tx.BookingID, entities.BookingStatusConfirmed); rerr != nil {
			log.Printf("[reconcile][usecase] booking confirm replay failed session_id=%s tx_id=%s booking_id=%s err=%v", sessionID, tx.ID, tx.BookingID, rerr)
			return entities.OutcomeNoOp, entities.PaymentTransaction{}, rerr
		} else if repaired {
			log.Printf("[reconcile][usecase] booking confirm completed on replay session_id=%s tx_id=%s booking_id=%s source=%s", sessionID, tx.ID, tx.BookingID, source)
		}
		log.Printf("[reconcile][usecase] noop (already paid) session_id=%s tx_id=%s observed=%s source=%s", sessionID, tx.ID, observed, source)
		return entities.OutcomeNoOp, tx, nil
	}

	// A pending observation carries no new information; writing it would only
	// churn the record on every poll.
	if observed == entities.TransactionStatusPending || observed == tx.Status {
		log.Printf("[reconcile][usecase] noop (no transition) session_id=%s tx_id=%s stored=%s observed=%s source=%s", sessionID, tx.ID, tx.Status, observed, source)
		return entities.OutcomeNoOp, tx, nil
	}

	updated, matched, err := u.txRepo.UpdateStatusIfNotPaid(ctx, tx.ID, observed)
	if err != nil {
		log.Printf("[reconcile][usecase] conditional update failed session_id=%s tx_id=%s observed=%s source=%s err=%v", sessionID, tx.ID, observed, source, err)
		return entities.OutcomeNoOp, entities.PaymentTransaction{}, err
	}
	if !matched {
		// Another writer landed paid between our read and our write.
		log.Printf("[reconcile][usecase] noop (lost race) session_id=%s tx_id=%s observed=%s source=%s", sessionID, tx.ID, observed, source)
		current, gerr := u.txRepo.GetByID(ctx, tx.ID)
		if gerr != nil || current.ID == "" {
			current = tx
		}
		return entities.OutcomeNoOp, current, nil
	}

	if observed != entities.TransactionStatusPaid {
		log.Printf("[reconcile][usecase] recorded session_id=%s tx_id=%s status=%s source=%s", sessionID, tx.ID, observed, source)
		return entities.OutcomeRecorded, updated, nil
	}

	// This caller won the paid transition; it is the only one allowed to touch
	// the booking. The booking write is conditional on pending: a booking
	// cancelled after checkout started stays cancelled even though the
	// transaction is now paid.
	booking, confirmed, err := u.bookingRepo.UpdateStatusIfPending(ctx, tx.BookingID, entities.BookingStatusConfirmed)
	if err != nil {
		log.Printf("[reconcile][usecase] booking confirm failed session_id=%s tx_id=%s booking_id=%s err=%v", sessionID, tx.ID, tx.BookingID, err)
		return entities.OutcomeNoOp, entities.PaymentTransaction{}, err
	}
	if !confirmed {
		log.Printf("[reconcile][usecase] paid but booking not pending session_id=%s tx_id=%s booking_id=%s source=%s", sessionID, tx.ID, tx.BookingID, source)
	} else {
		log.Printf("[reconcile][usecase] confirmed session_id=%s tx_id=%s booking_id=%s booking_status=%s source=%s", sessionID, tx.ID, booking.ID, booking.Status, source)
	}
	return entities.OutcomeConfirmed, updated, nil
}

// CheckStatus serves the poll path: it asks the gateway for the live session
// status (the stored transaction may lag behind when no webhook has arrived
// yet) and feeds the fresh observation through Observe.
func (u *PaymentReconciliationUseCase) CheckStatus(ctx context.Context, sessionID string) (entities.TransactionStatus, entities.Outcome, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", entities.OutcomeNoOp, ErrInvalidSessionID
	}
	if u.gateway == nil {
		return "", entities.OutcomeNoOp, errors.New("checkout gateway not configured")
	}

	log.Printf("[reconcile][usecase] poll start session_id=%s", sessionID)
	observed, err := u.gateway.GetStatus(ctx, sessionID)
	if err != nil {
		log.Printf("[reconcile][usecase] poll gateway status failed session_id=%s err=%v", sessionID, err)
		return "", entities.OutcomeNoOp, err
	}

	outcome, tx, err := u.Observe(ctx, sessionID, observed, entities.SourcePoll)
	if err != nil {
		return "", entities.OutcomeNoOp, err
	}
	log.Printf("[reconcile][usecase] poll done session_id=%s observed=%s stored=%s outcome=%s", sessionID, observed, tx.Status, outcome)
	return tx.Status, outcome, nil
}

// HandleWebhook serves the webhook path: verify the provider signature, parse
// the normalized event and feed it through Observe. A bad signature fails
// before any state is touched.
func (u *PaymentReconciliationUseCase) HandleWebhook(ctx context.Context, rawBody []byte, signatureHeader string) (entities.Outcome, error) {
	if u.gateway == nil {
		return entities.OutcomeNoOp, errors.New("checkout gateway not configured")
	}

	sessionID, observed, err := u.gateway.VerifyAndParseWebhook(ctx, rawBody, signatureHeader)
	if err != nil {
		if errors.Is(err, interfaces.ErrWebhookEventIgnored) {
			log.Printf("[reconcile][usecase] webhook event ignored")
			return entities.OutcomeNoOp, nil
		}
		log.Printf("[reconcile][usecase] webhook verify failed err=%v", err)
		return entities.OutcomeNoOp, err
	}

	outcome, _, err := u.Observe(ctx, sessionID, observed, entities.SourceWebhook)
	if err != nil {
		return entities.OutcomeNoOp, err
	}
	log.Printf("[reconcile][usecase] webhook done session_id=%s observed=%s outcome=%s", sessionID, observed, outcome)
	return outcome, nil
}
